package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strideworks/stridemap/core"
	"github.com/strideworks/stridemap/internal/contract"
)

// calendarCmd renders the per-day calendar heatmap image.
var calendarCmd = &cobra.Command{
	Use:   "calendar [csv-path]",
	Short: "Render a GitHub-style calendar heatmap.",
	Long: `Render a calendar heatmap PNG with one band per year, one column per
week and one row per weekday. The cell metric is selected with --metric:
activity counts or total distance per day.

Examples:
  # Calendar of activity counts
  stridemap calendar Activities.csv

  # Calendar of daily distance for 2024
  stridemap calendar Activities.csv --metric distance --since 2024-01-01 --until 2025-01-01`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCalendar(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot render calendar", err)
		}
	},
}
