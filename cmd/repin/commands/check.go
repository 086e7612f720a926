package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/repin/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every pinned package has a corresponding unpinned entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pinned, unpinned, err := manifestPaths(cmd)
			if err != nil {
				return err
			}

			report, err := c.app.Check(cmd.Context(), pinned, unpinned)
			if err != nil {
				return err
			}

			if !report.Clean() {
				cmd.Print(report.Render())
				return domain.ErrDriftDetected
			}
			return nil
		},
	}
}
