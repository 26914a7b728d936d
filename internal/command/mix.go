package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cipherium-go/internal/dispatch"
	"github.com/cipherium-go/internal/encryption"
	apperrors "github.com/cipherium-go/internal/errors"
	"github.com/cipherium-go/internal/output"
	"github.com/cipherium-go/internal/trace"
)

// MixCommand returns the quick classical-cipher command. The message is
// always read from stdin.
func MixCommand() *cli.Command {
	return &cli.Command{
		Name:  "mix",
		Usage: "Encrypt one line from stdin with a classical cipher",
		Subcommands: []*cli.Command{
			{
				Name:  "symbol",
				Usage: "Leet-style symbol substitution",
				Action: func(c *cli.Context) error {
					return mix(c, encryption.OpSymbol, encryption.Params{})
				},
			},
			{
				Name:  "reverse",
				Usage: "Reverse each word",
				Action: func(c *cli.Context) error {
					return mix(c, encryption.OpReverse, encryption.Params{})
				},
			},
			{
				Name:      "caesar",
				Usage:     "Caesar shift",
				ArgsUsage: "<amount>",
				// Negative amounts must not be read as flags.
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return apperrors.NewInvalidInput("caesar requires exactly one shift amount")
					}
					amount, err := encryption.ParseShift(c.Args().First())
					if err != nil {
						return err
					}
					return mix(c, encryption.OpCaesar, encryption.Params{Amount: amount})
				},
			},
			{
				Name:      "vigenere",
				Usage:     "Vigenère encryption",
				ArgsUsage: "<key>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return apperrors.NewInvalidInput("vigenere requires exactly one key")
					}
					key := c.Args().First()
					if err := encryption.ValidateVigenereKey(key); err != nil {
						return err
					}
					return mix(c, encryption.OpVigenere, encryption.Params{Key: key})
				},
			},
		},
	}
}

func mix(c *cli.Context, op encryption.OpType, p encryption.Params) error {
	prompt(c, "Enter your message: ")
	message, err := readLine(c.App.Reader)
	if err != nil {
		return err
	}

	format := output.Format(GetConfig(c).Output.Format)
	if format != output.FormatText {
		return emit(c, op, message, p)
	}

	out, err := dispatch.Invoke(trace.WithSession(c.Context, "mix"), op, message, p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "Here is your encrypted message:\n> %s\n", out)
	return err
}
