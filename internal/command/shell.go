package command

import (
	"github.com/urfave/cli/v2"

	apperrors "github.com/cipherium-go/internal/errors"
	"github.com/cipherium-go/internal/shell"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Open the interactive protocol menu (default)",
		Action: runShell,
	}
}

// runShell starts the menu. Colour, animation and screen clearing are
// turned off when stdout is not a terminal.
func runShell(c *cli.Context) error {
	if c.NArg() > 0 {
		return apperrors.NewUnknownOperation(c.Args().First())
	}
	cfg := GetConfig(c)
	tty := isTerminal(c.App.Writer)

	sh := shell.New(c.App.Reader, c.App.Writer, shell.Config{
		Color:       cfg.Shell.Color && tty,
		Animate:     cfg.Shell.Animate && tty,
		TypeDelay:   cfg.TypeDelay(),
		ClearScreen: cfg.Shell.ClearScreen && tty,
	})
	return sh.Run(c.Context)
}
