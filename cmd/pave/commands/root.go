// Package commands implements the CLI commands for the pave tool.
package commands

import (
	"context"

	"github.com/pavetool/pave/internal/app"
	"github.com/pavetool/pave/internal/build"
	"github.com/pavetool/pave/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for pave.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pave",
		Short:         "Keep a pip environment in lockstep with its declared packages",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("manifest", "m", domain.ManifestFileName, "Path to the project manifest")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// manifestPath returns the value of the manifest flag.
func (c *CLI) manifestPath() string {
	path, _ := c.rootCmd.PersistentFlags().GetString("manifest")
	return path
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
