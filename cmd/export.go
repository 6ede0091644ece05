package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strideworks/stridemap/core"
	"github.com/strideworks/stridemap/internal/contract"
)

// exportCmd writes cleaned activities and completed grids to files.
var exportCmd = &cobra.Command{
	Use:   "export [csv-path]",
	Short: "Export cleaned activities and heatmap grids to files.",
	Long: `Write the filtered activities plus the completed count and distance
grids into the results directory. The --output flag selects the file
format: csv, json or parquet.

Examples:
  # CSV files under the results directory
  stridemap export Activities.csv

  # Parquet files for downstream analysis
  stridemap export Activities.csv --output parquet

  # JSON files in a custom directory
  stridemap export Activities.csv --output json --results-dir ./out`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}
