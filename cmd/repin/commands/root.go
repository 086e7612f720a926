// Package commands implements the CLI commands for the repin tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/repin/internal/app"
)

// CLI represents the command line interface for repin.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "repin",
		Short:         "Reconcile pinned and unpinned environment manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("pinned", "p", "environment.yaml", "Path to the pinned manifest")
	rootCmd.PersistentFlags().StringSliceP("unpinned", "u", []string{
		"scripts/environment-unpinned.yaml",
		"scripts/environment-unpinned-dev.yaml",
	}, "Path to an unpinned manifest (repeatable)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the stdout and stderr writers for the root command.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

// manifestPaths returns the pinned and unpinned paths from the persistent flags.
func manifestPaths(cmd *cobra.Command) (string, []string, error) {
	pinned, err := cmd.Flags().GetString("pinned")
	if err != nil {
		return "", nil, err
	}
	unpinned, err := cmd.Flags().GetStringSlice("unpinned")
	if err != nil {
		return "", nil, err
	}
	return pinned, unpinned, nil
}
