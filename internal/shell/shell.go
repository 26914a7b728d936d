// Package shell provides the interactive protocol menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cipherium-go/internal/dispatch"
	"github.com/cipherium-go/internal/encryption"
	"github.com/cipherium-go/internal/trace"
)

// Config controls presentation only; it never changes transform results.
type Config struct {
	Color       bool
	Animate     bool
	TypeDelay   time.Duration
	ClearScreen bool
}

// Shell is the read-prompt-dispatch loop. It handles one operation at a time.
type Shell struct {
	in    *bufio.Reader
	out   io.Writer
	cfg   Config
	theme *Theme
	sleep func(time.Duration)
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// New creates a shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, cfg Config) *Shell {
	return &Shell{
		in:    bufio.NewReader(in),
		out:   out,
		cfg:   cfg,
		theme: NewTheme(cfg.Color),
		sleep: time.Sleep,
	}
}

var banner = []string{
	"   ┌──┬────┬──┬────┬──┬────┬──┐",
	"   ░▒▓█  C I P H E R I U M  █▓▒░",
	"   └──┴────┴──┴────┴──┴────┴──┘",
	"  ├─[ 0101 ]─[ 1010 ]─[ 1111 ]─┤",
	"   >>> Access Granted...",
}

// Run shows the menu until the user exits or input ends. EOF is a clean exit.
// Cancelling ctx returns ctx.Err() even while a prompt is waiting for input.
func (s *Shell) Run(ctx context.Context) error {
	ctx = trace.WithSession(ctx, "shell")
	done := make(chan struct{})
	defer close(done)
	s.lines = make(chan lineResult)
	go s.readLines(s.lines, done)

	err := s.loop(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.showMenu()

		choice, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		e, ok := selectEntry(choice)
		if !ok {
			s.errorf("Invalid protocol. Choose 01-%02d.", len(menu))
			continue
		}
		if e.Exit {
			fmt.Fprintln(s.out, s.theme.Danger.Sprint(">>> Shutting down system GOODBYE...!"))
			return nil
		}

		if err := s.runEntry(ctx, e); err != nil {
			return err
		}

		again, err := s.askTryAgain(ctx)
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(s.out, s.theme.Danger.Sprint(">>> Shutting down system..."))
			return nil
		}
	}
}

func (s *Shell) showMenu() {
	if s.cfg.ClearScreen {
		fmt.Fprint(s.out, "\x1bc")
	}
	for _, line := range banner {
		s.typeLine(s.theme.Title.Sprint(line))
	}
	s.renderMenu()
}

// typeLine prints line one character at a time when animation is enabled
func (s *Shell) typeLine(line string) {
	if !s.cfg.Animate || s.cfg.TypeDelay <= 0 {
		fmt.Fprintln(s.out, line)
		return
	}
	for _, r := range line {
		fmt.Fprint(s.out, string(r))
		s.sleep(s.cfg.TypeDelay)
	}
	fmt.Fprintln(s.out)
}

// runEntry collects parameters for e, invokes it and prints the outcome.
// Invalid parameters are reported and asked for again.
func (s *Shell) runEntry(ctx context.Context, e entry) error {
	spec, err := encryption.Lookup(e.Op)
	if err != nil {
		return err
	}
	params := encryption.Params{Decrypt: e.Decrypt}

	if spec.NeedsShift {
		for {
			raw, err := s.prompt(ctx, "Enter shift number: ")
			if err != nil {
				return err
			}
			amount, perr := encryption.ParseShift(raw)
			if perr == nil {
				params.Amount = amount
				break
			}
			s.errorf("Shift must be a number.")
		}
	}

	var message string
	switch spec.KeyRule {
	case encryption.KeyNone:
		message, err = s.promptMessage(ctx, e)
	case encryption.KeyCoversMessage:
		params.Key, message, err = s.promptKeyAndMessage(ctx, spec)
	default:
		params.Key, err = s.promptKey(ctx, spec)
		if err == nil {
			message, err = s.promptMessage(ctx, e)
		}
	}
	if err != nil {
		return err
	}

	out, err := dispatch.Invoke(trace.WithOpID(ctx, trace.GenerateOpID()), e.Op, message, params)
	if err != nil {
		fmt.Fprintln(s.out, s.theme.Danger.Sprintf(">>> Error detected: %v", err))
		return nil
	}
	fmt.Fprintln(s.out, s.theme.Result.Sprintf(">>> Processed data: %s", out))
	return nil
}

func keyPrompt(rule encryption.KeyRule) string {
	switch rule {
	case encryption.KeyLetters:
		return "Enter key (letters only): "
	case encryption.KeyMinLength:
		return fmt.Sprintf("Enter key (minimum %d characters): ", encryption.MatrixKeyLength)
	case encryption.KeyCoversMessage:
		return "Enter key (same length as message or longer): "
	}
	return "Enter key: "
}

func (s *Shell) promptKey(ctx context.Context, spec encryption.Spec) (string, error) {
	for {
		key, err := s.prompt(ctx, keyPrompt(spec.KeyRule))
		if err != nil {
			return "", err
		}
		verr := encryption.ValidateKey(spec, key, "")
		if verr == nil {
			return key, nil
		}
		s.errorf("%v", verr)
	}
}

// promptKeyAndMessage asks for both again when the key cannot cover the message
func (s *Shell) promptKeyAndMessage(ctx context.Context, spec encryption.Spec) (string, string, error) {
	for {
		key, err := s.prompt(ctx, keyPrompt(spec.KeyRule))
		if err != nil {
			return "", "", err
		}
		message, err := s.prompt(ctx, "Enter your message: ")
		if err != nil {
			return "", "", err
		}
		verr := encryption.ValidateKey(spec, key, message)
		if verr == nil {
			return key, message, nil
		}
		s.errorf("Key must be as long as message or longer.")
	}
}

func (s *Shell) promptMessage(ctx context.Context, e entry) (string, error) {
	if e.Verb != "" {
		return s.prompt(ctx, fmt.Sprintf("Enter message to %s: ", e.Verb))
	}
	return s.prompt(ctx, "Enter your message: ")
}

func (s *Shell) askTryAgain(ctx context.Context) (bool, error) {
	for {
		answer, err := s.prompt(ctx, "Restart protocol? (y/n): ")
		if err != nil {
			return false, err
		}
		if yes, ok := parseYesNo(answer); ok {
			return yes, nil
		}
		s.errorf(`Enter "y" or "n" only.`)
	}
}

func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.out, s.theme.Frame.Sprint(">>> "+text))
	return s.readLine(ctx)
}

// readLine returns the next line with surrounding whitespace trimmed, or
// ctx.Err() as soon as ctx is cancelled.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-s.lines:
		return r.line, r.err
	}
}

// readLines feeds lines until input fails or done is closed. A final line
// without a newline is still delivered; io.EOF follows once no input remains.
// A blocked read cannot be interrupted, so the goroutine may outlive Run
// until the underlying reader returns.
func (s *Shell) readLines(lines chan<- lineResult, done <-chan struct{}) {
	for {
		line, err := s.in.ReadString('\n')
		if line != "" && (err == nil || errors.Is(err, io.EOF)) {
			select {
			case lines <- lineResult{line: strings.TrimSpace(line)}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case lines <- lineResult{err: err}:
			case <-done:
			}
			return
		}
	}
}

// parseYesNo interprets a retry answer. ok is false for anything other than
// y, yes, n or no.
func parseYesNo(raw string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(s.out, s.theme.Danger.Sprintf(">>> Error: "+format, args...))
}
