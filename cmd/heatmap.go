package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strideworks/stridemap/core"
	"github.com/strideworks/stridemap/internal/contract"
)

// heatmapCmd renders the weekly heatmap images.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [csv-path]",
	Short: "Render weekday-by-hour heatmap images.",
	Long: `Render two PNG heatmaps on a weekday-by-hour grid: activity counts
and mean distance per cell. Every cell of the 7x24 grid is drawn, with
zero values for slots that have no activities.

Examples:
  # Render heatmaps from a tracker CSV export
  stridemap heatmap Activities.csv

  # Only count activities from the last year
  stridemap heatmap Activities.csv --since "1 year ago"

  # Monday as the first row, more color resolution
  stridemap heatmap Activities.csv --weekday-order monday-first --color-buckets 9

  # Read from the activity store instead of a CSV
  stridemap heatmap --from-store

  # Also print the grid for the selected metric as a table
  stridemap heatmap Activities.csv --table --metric distance`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeatmap(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot render heatmap", err)
		}
	},
}
