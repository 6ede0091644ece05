// Package cmd defines the command-line interface for stridemap.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeImportCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	storeCmd.AddCommand(storeClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("results-dir", contract.DefaultResultsDir, "Directory for generated images and exports")
	rootCmd.PersistentFlags().String("since", "", "Start date in ISO8601 or time ago (inclusive)")
	rootCmd.PersistentFlags().String("until", "", "End date in ISO8601 or time ago (exclusive)")
	rootCmd.PersistentFlags().Float64("max-distance", contract.DefaultMaxDistanceKm, "Drop activities longer than this distance in km (0 disables)")
	rootCmd.PersistentFlags().String("sport", string(schema.SportAll), "Sport filter: running or cycling or walking or hiking or all")
	rootCmd.PersistentFlags().String("weekday-order", string(schema.SundayFirst), "Weekday axis order: sunday-first or monday-first")
	rootCmd.PersistentFlags().StringP("metric", "m", string(schema.CountMetric), "Heatmap metric: counts or distance")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("color-buckets", contract.DefaultColorBuckets, "Number of discrete color buckets in heatmap images")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Activity store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Bool("from-store", false, "Read activities from the store instead of a CSV file")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emoji prefixes in log lines (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of heatmapCmd to Viper
	heatmapCmd.Flags().Bool("table", false, "Also print the dense weekday x hour grid as a table")
	if err := viper.BindPFlags(heatmapCmd.Flags()); err != nil {
		contract.LogFatal("Error binding heatmap flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
