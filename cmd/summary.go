package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strideworks/stridemap/core"
	"github.com/strideworks/stridemap/internal/contract"
)

// summaryCmd prints aggregate statistics for the selected activities.
var summaryCmd = &cobra.Command{
	Use:   "summary [csv-path]",
	Short: "Show aggregate statistics for the selected activities.",
	Long: `Print overall, per-sport, weekly and monthly aggregates for the
activities that survive the configured filters.

Examples:
  # Text tables on the terminal
  stridemap summary Activities.csv

  # Full report as JSON
  stridemap summary Activities.csv --output json

  # Weekly totals as CSV written to a file
  stridemap summary Activities.csv --output csv --output-file weekly.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}
