package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reattach/internal/app"
)

func (c *CLI) newReconnectCmd() *cobra.Command {
	var (
		target  string
		version string
		full    bool
		workDir string
	)
	cmd := &cobra.Command{
		Use:   "reconnect [apps...]",
		Short: "Reconnect tests to the results of a previous run",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Reconnect(cmd.Context(), app.ReconnectOptions{
				CommonOptions:   c.commonOptions(args, target),
				Version:         version,
				FullRecalculate: full,
				WorkDir:         workDir,
			})
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "Run directory, or directory to search for runs")
	cmd.Flags().StringVar(&version, "version", "", "Extra version to reconnect to, as listed by 'reattach versions'")
	cmd.Flags().BoolVarP(&full, "full", "f", false, "Recompute every outcome from the raw results")
	cmd.Flags().StringVarP(&workDir, "work-dir", "w", "", "Where reconnected tests are written (default: .reattach/work)")
	return cmd
}
