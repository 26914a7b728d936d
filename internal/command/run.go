package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/cipherium-go/internal/dispatch"
	"github.com/cipherium-go/internal/encryption"
	apperrors "github.com/cipherium-go/internal/errors"
	"github.com/cipherium-go/internal/output"
	"github.com/cipherium-go/internal/trace"
)

// RunCommand returns the one-shot transform command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Apply one operation to a message, a file or stdin",
		ArgsUsage: "[flags] <operation> [message...]",
		Description: `Without a message argument every input line is transformed independently.
Run "cipherium list" to see the available operations.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "shift",
				Usage: "Caesar shift amount",
			},
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "key for keyed operations",
			},
			&cli.BoolFlag{
				Name:    "decrypt",
				Aliases: []string{"d"},
				Usage:   "decrypt instead of encrypt (vigenere)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read input lines from `FILE` instead of stdin",
			},
		},
		Action: runOperation,
	}
}

func runOperation(c *cli.Context) error {
	if c.NArg() < 1 {
		return apperrors.NewInvalidInput("operation name is required")
	}
	op := encryption.OpType(strings.ToLower(c.Args().First()))
	spec, err := encryption.Lookup(op)
	if err != nil {
		return err
	}

	params, err := collectParams(c, spec)
	if err != nil {
		return err
	}

	format := output.Format(GetConfig(c).Output.Format)
	ctx := trace.WithSession(c.Context, "run")

	if c.NArg() > 1 {
		message := joinArgs(c.Args().Tail())
		out, err := dispatch.Invoke(ctx, op, message, params)
		if format == output.FormatText {
			if err != nil {
				return err
			}
			_, werr := fmt.Fprintln(c.App.Writer, out)
			return werr
		}
		if ferr := output.NewFormatter(format).Format(c.App.Writer, output.NewResult(string(op), out, err)); ferr != nil {
			return ferr
		}
		if err != nil {
			return reportedError{err}
		}
		return nil
	}

	in, closeFn, err := openInput(c)
	if err != nil {
		return err
	}
	defer closeFn()

	if format == output.FormatText {
		r, err := encryption.WrapReaderOp(in, op, params)
		if err != nil {
			return err
		}
		_, err = io.Copy(c.App.Writer, r)
		return err
	}
	return runLines(c, in, op, params, output.NewFormatter(format))
}

// runLines emits one formatted result per input line. Failing lines are
// reported in place and the first failure sets the exit status.
func runLines(c *cli.Context, in io.Reader, op encryption.OpType, params encryption.Params, f output.Formatter) error {
	ctx := trace.WithSession(c.Context, "run")
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var first error
	for scanner.Scan() {
		out, err := dispatch.Invoke(trace.WithOpID(ctx, trace.GenerateOpID()), op, scanner.Text(), params)
		if err != nil && first == nil {
			first = err
		}
		if ferr := f.Format(c.App.Writer, output.NewResult(string(op), out, err)); ferr != nil {
			return ferr
		}
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewInternalWithCause("read input", err)
	}
	if first != nil {
		return reportedError{first}
	}
	return nil
}

// collectParams validates flags against what the operation requires.
func collectParams(c *cli.Context, spec encryption.Spec) (encryption.Params, error) {
	p := encryption.Params{
		Key:     c.String("key"),
		Decrypt: c.Bool("decrypt"),
	}

	if spec.NeedsShift {
		if !c.IsSet("shift") {
			return p, apperrors.NewInvalidInput(fmt.Sprintf("--shift is required for %s", spec.Op))
		}
		amount, err := encryption.ParseShift(c.String("shift"))
		if err != nil {
			return p, err
		}
		p.Amount = amount
	}

	if spec.NeedsKey() && spec.KeyRule != encryption.KeyAny && !c.IsSet("key") {
		return p, apperrors.NewInvalidKey(fmt.Sprintf("--key is required for %s", spec.Op))
	}
	// KeyCoversMessage depends on each message and is checked by the transform.
	if spec.KeyRule != encryption.KeyCoversMessage {
		if err := encryption.ValidateKey(spec, p.Key, ""); err != nil {
			return p, err
		}
	}

	if p.Decrypt && spec.Op != encryption.OpVigenere {
		log.Debug().Str("op", string(spec.Op)).Msg("--decrypt ignored")
	}
	return p, nil
}

// openInput returns the --file contents or the app reader.
func openInput(c *cli.Context) (io.Reader, func(), error) {
	path := c.String("file")
	if path == "" {
		return c.App.Reader, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, apperrors.NewInvalidInputWithCause(fmt.Sprintf("input file not found: %s", path), err)
		}
		return nil, nil, apperrors.NewInternalWithCause("open input file", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// readLine reads one line from r without its line terminator. Empty input
// yields an empty string.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", apperrors.NewInternalWithCause("read input", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
