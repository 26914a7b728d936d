package command

import (
	"github.com/urfave/cli/v2"

	"github.com/cipherium-go/internal/encryption"
	"github.com/cipherium-go/internal/output"
)

// ListCommand returns the command listing registered operations.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List available operations",
		Action: func(c *cli.Context) error {
			specs := encryption.ListRegistered()
			ops := make([]output.Operation, 0, len(specs))
			for _, s := range specs {
				ops = append(ops, output.Operation{
					Name:        string(s.Op),
					Kind:        string(s.Kind),
					Shift:       s.NeedsShift,
					Key:         s.KeyRule.String(),
					Description: s.Description,
				})
			}
			return output.WriteOperations(c.App.Writer, output.Format(GetConfig(c).Output.Format), ops)
		},
	}
}
