package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Rewrite the pinned manifest keeping only unpinned packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pinned, unpinned, err := manifestPaths(cmd)
			if err != nil {
				return err
			}
			return c.app.Prune(cmd.Context(), pinned, unpinned)
		},
	}
}
