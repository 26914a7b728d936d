package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cipherium-go/internal/dispatch"
	"github.com/cipherium-go/internal/encryption"
	"github.com/cipherium-go/internal/output"
	"github.com/cipherium-go/internal/trace"
)

// SuperCommand returns the super pipeline command.
func SuperCommand() *cli.Command {
	return &cli.Command{
		Name:  "super",
		Usage: "Run the Super pipeline: caesar 5, symbol, vigenere \"key\", reverse, base64",
		Subcommands: []*cli.Command{
			superSubcommand("encode", encryption.OpSuperEncode, "Enter message to encode: "),
			superSubcommand("decode", encryption.OpSuperDecode, "Enter message to decode: "),
			superSubcommand("hash", encryption.OpSuperHash, "Enter message to hash: "),
		},
	}
}

func superSubcommand(name string, op encryption.OpType, promptText string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     fmt.Sprintf("Super %s a message", name),
		ArgsUsage: "[message...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				prompt(c, promptText)
			}
			message, err := readMessage(c.Args().Slice(), c.App.Reader)
			if err != nil {
				return err
			}
			return emit(c, op, message, encryption.Params{})
		},
	}
}

// emit invokes op once and writes the result in the configured format.
func emit(c *cli.Context, op encryption.OpType, message string, p encryption.Params) error {
	ctx := trace.WithSession(c.Context, "cli")
	out, err := dispatch.Invoke(ctx, op, message, p)

	format := output.Format(GetConfig(c).Output.Format)
	if format == output.FormatText && err != nil {
		return err
	}
	if ferr := output.NewFormatter(format).Format(c.App.Writer, output.NewResult(string(op), out, err)); ferr != nil {
		return ferr
	}
	if err != nil {
		return reportedError{err}
	}
	return nil
}
