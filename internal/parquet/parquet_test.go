package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strideworks/stridemap/schema"
)

func TestActivityRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sc := parquet.SchemaOf(new(ActivityRow))
	require.NotNil(t, sc)

	expectedColumns := []string{
		"sport",
		"start_time",
		"distance_km",
		"calories",
		"duration",
		"avg_pace",
		"elev_gain_m",
	}
	for _, colName := range expectedColumns {
		col, ok := sc.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestGridCellRowStructTags(t *testing.T) {
	sc := parquet.SchemaOf(new(GridCellRow))
	require.NotNil(t, sc)

	expectedColumns := []string{"metric", "weekday", "hour", "value"}
	for _, colName := range expectedColumns {
		col, ok := sc.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteActivities(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "activities.parquet")

	calories := 312.0
	elev := 214.0
	acts := []schema.Activity{
		{
			Sport:      schema.SportRunning,
			StartTime:  time.Date(2024, 6, 2, 14, 5, 0, 0, time.UTC),
			DistanceKm: 21.1,
			Calories:   &calories,
			Duration:   "1:52:10",
			AvgPace:    "5:19",
			ElevGainM:  &elev,
		},
		{
			// Optional fields absent
			Sport:      schema.SportCycling,
			StartTime:  time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC),
			DistanceKm: 40.5,
		},
	}

	err := WriteActivities(acts, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0))

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ActivityRow](file)
	defer reader.Close()

	readData := make([]ActivityRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(acts), n, "Should read all records")

	assert.Equal(t, "Running", readData[0].Sport)
	assert.Equal(t, 21.1, readData[0].DistanceKm)
	assert.WithinDuration(t, acts[0].StartTime, readData[0].StartTime, time.Nanosecond)
	require.NotNil(t, readData[0].Calories)
	assert.Equal(t, calories, *readData[0].Calories)
	require.NotNil(t, readData[0].Duration)
	assert.Equal(t, "1:52:10", *readData[0].Duration)

	assert.Equal(t, "Cycling", readData[1].Sport)
	assert.Nil(t, readData[1].Calories, "Absent calories must stay nil")
	assert.Nil(t, readData[1].Duration, "Empty duration must stay nil")
	assert.Nil(t, readData[1].ElevGainM)
}

func TestWriteGridCells(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "grid.parquet")

	cells := []schema.GridCell{
		{Weekday: time.Sunday, Hour: 14, Value: 6},
		{Weekday: time.Monday, Hour: 0, Value: 0},
	}

	err := WriteGridCells(cells, schema.DistanceMetric, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[GridCellRow](file)
	defer reader.Close()

	readData := make([]GridCellRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(cells), n)

	assert.Equal(t, "distance", readData[0].Metric)
	assert.Equal(t, "Sun", readData[0].Weekday)
	assert.Equal(t, int32(14), readData[0].Hour)
	assert.Equal(t, 6.0, readData[0].Value)
	assert.Equal(t, "Mon", readData[1].Weekday)
	assert.Zero(t, readData[1].Value, "Zero-filled cells survive the round trip")
}

func TestWriteActivitiesEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty.parquet")

	err := WriteActivities(nil, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteActivitiesInvalidPath(t *testing.T) {
	err := WriteActivities(nil, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
