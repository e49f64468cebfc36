package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reattach/internal/app"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "versions [apps...]",
		Short: "List the extra versions that previous runs can be reconnected under",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Versions(cmd.Context(), app.VersionsOptions{
				CommonOptions: c.commonOptions(args, target),
			})
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "Run directory, or directory to search for runs")
	return cmd
}
