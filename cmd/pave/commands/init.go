package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <venv-dir>",
		Short: "Create the project manifest and virtualenv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Init(cmd.Context(), c.manifestPath(), args[0])
		},
	}
}
