// Package command provides CLI command definitions for cipherium.
//
// It uses urfave/cli/v2 for argument parsing. Running the binary without a
// subcommand opens the interactive shell.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/cipherium-go/internal/config"
	"github.com/cipherium-go/internal/logging"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const configKey = "config"

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "cipherium",
		Usage:   "classical ciphers, encodings and keyed digests",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ShellCommand(),
			RunCommand(),
			ListCommand(),
			SuperCommand(),
			MixCommand(),
		},
		Before:          setup,
		Action:          runShell,
		HideHelpCommand: true,
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a config file (yaml, json or toml)",
			EnvVars: []string{"CIPHERIUM_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: text, json, yaml",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable ANSI colours in the shell",
		},
	}
}

// setup loads configuration, applies flag overrides and configures logging.
// Logging starts at the default level so messages from loading the config
// file respect --log-level and otherwise stay quiet.
func setup(c *cli.Context) error {
	boot := config.Default().Log
	if level, err := config.ParseLogLevel(c.String("log-level")); err == nil && c.IsSet("log-level") {
		boot.Level = level
	}
	logging.Setup(boot, c.App.ErrWriter)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("output") {
		cfg.Output.Format = c.String("output")
	}
	if c.Bool("no-color") {
		cfg.Shell.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.Log, c.App.ErrWriter)
	c.App.Metadata[configKey] = cfg
	return nil
}

// GetConfig retrieves the loaded configuration from context.
func GetConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// reportedError marks an error whose details were already written to stdout.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// Reported reports whether err was already rendered by a command and should
// only affect the exit code.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// prompt writes text to the error stream when reading interactively, so
// piped stdout carries only results.
func prompt(c *cli.Context, text string) {
	if isTerminal(c.App.Reader) {
		fmt.Fprint(c.App.ErrWriter, text)
	}
}

// readMessage returns args joined by spaces, or a single line from r.
func readMessage(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return joinArgs(args), nil
	}
	line, err := readLine(r)
	if err != nil {
		return "", err
	}
	return line, nil
}
