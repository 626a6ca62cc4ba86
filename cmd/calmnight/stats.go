package main

import (
	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/cli"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show streaks, mood trend, emotion distribution and insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			return cli.RenderDashboard(cmd.OutOrStdout(), service.Summary(cmd.Context()))
		},
	}
}
