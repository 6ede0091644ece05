// Package parquet exports stridemap data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/strideworks/stridemap/schema"
)

// ActivityRow is the Parquet layout for one imported activity.
type ActivityRow struct {
	// Sport is the activity type as recorded by the tracker
	Sport string `parquet:"sport,snappy"`

	// StartTime is the local start timestamp (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// DistanceKm is the distance covered in kilometers
	DistanceKm float64 `parquet:"distance_km,snappy"`

	// Calories is the energy burned (nullable)
	Calories *float64 `parquet:"calories,optional,snappy"`

	// Duration is the raw duration string from the export (nullable)
	Duration *string `parquet:"duration,optional,snappy"`

	// AvgPace is the raw average pace string from the export (nullable)
	AvgPace *string `parquet:"avg_pace,optional,snappy"`

	// ElevGainM is the elevation gain in meters (nullable)
	ElevGainM *float64 `parquet:"elev_gain_m,optional,snappy"`
}

// GridCellRow is the Parquet layout for one completed heatmap grid cell.
type GridCellRow struct {
	// Metric identifies the aggregate plotted in this grid (counts or distance)
	Metric string `parquet:"metric,snappy"`

	// Weekday is the three-letter weekday label
	Weekday string `parquet:"weekday,snappy"`

	// Hour is the hour of day (0-23)
	Hour int32 `parquet:"hour,snappy"`

	// Value is the aggregate value, zero for cells with no activity
	Value float64 `parquet:"value,snappy"`
}

// WriteActivities writes activities to a Parquet file.
func WriteActivities(acts []schema.Activity, outputPath string) error {
	rows := make([]ActivityRow, len(acts))
	for i, a := range acts {
		rows[i] = ActivityRow{
			Sport:      string(a.Sport),
			StartTime:  a.StartTime,
			DistanceKm: a.DistanceKm,
			Calories:   a.Calories,
			Duration:   optionalString(a.Duration),
			AvgPace:    optionalString(a.AvgPace),
			ElevGainM:  a.ElevGainM,
		}
	}
	return writeRows(rows, outputPath)
}

// WriteGridCells writes completed grid cells to a Parquet file.
func WriteGridCells(cells []schema.GridCell, metric schema.Metric, outputPath string) error {
	rows := make([]GridCellRow, len(cells))
	for i, c := range cells {
		rows[i] = GridCellRow{
			Metric:  string(metric),
			Weekday: schema.WeekdayLabel(c.Weekday),
			Hour:    int32(c.Hour),
			Value:   c.Value,
		}
	}
	return writeRows(rows, outputPath)
}

// writeRows writes any row slice using struct schema inference.
func writeRows[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
