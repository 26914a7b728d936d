package encryption

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single input line for line readers
const maxLineSize = 1024 * 1024

// lineReader applies a transform to every line of the wrapped reader
type lineReader struct {
	scanner   *bufio.Scanner
	transform Transform
	params    Params
	pending   []byte
	err       error
}

// WrapReader creates a reader yielding t applied to each line of r, each
// result terminated by '\n'. Empty lines are emitted unchanged without
// invoking t. The first transform error is returned by Read after all
// previously produced output has been drained.
func WrapReader(r io.Reader, t Transform, p Params) io.Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{
		scanner:   scanner,
		transform: t,
		params:    p,
	}
}

// WrapReaderOp looks up op and wraps r with its transform
func WrapReaderOp(r io.Reader, op OpType, p Params) (io.Reader, error) {
	spec, err := Lookup(op)
	if err != nil {
		return nil, err
	}
	return WrapReader(r, spec.Transform, p), nil
}

func (r *lineReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *lineReader) fill() {
	if !r.scanner.Scan() {
		r.err = r.scanner.Err()
		if r.err == nil {
			r.err = io.EOF
		}
		return
	}

	line := r.scanner.Text()
	if line == "" {
		r.pending = append(r.pending[:0], '\n')
		return
	}
	out, err := r.transform(line, r.params)
	if err != nil {
		r.err = err
		return
	}
	r.pending = append(append(r.pending[:0], out...), '\n')
}
