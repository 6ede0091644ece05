package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strideworks/stridemap/schema"
)

func fptr(v float64) *float64 { return &v }

// TestAggregateWeekly verifies counts and distance sums land on the right
// (weekday, hour) key.
func TestAggregateWeekly(t *testing.T) {
	// 2024-06-02 is a Sunday, 2024-06-03 a Monday.
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 6, 2, 14, 5, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 6, 9, 14, 50, 0, 0, time.UTC), 7),
		mkActivity(schema.SportRunning, time.Date(2024, 6, 3, 6, 30, 0, 0, time.UTC), 10),
	}

	agg := AggregateWeekly(acts)

	sunday := schema.GridKey{Weekday: time.Sunday, Hour: 14}
	monday := schema.GridKey{Weekday: time.Monday, Hour: 6}

	assert.Equal(t, 2, agg.Counts[sunday], "Two Sunday 14h activities")
	assert.Equal(t, 1, agg.Counts[monday])
	assert.InDelta(t, 12.0, agg.DistanceSums[sunday], 1e-9)
	assert.InDelta(t, 10.0, agg.DistanceSums[monday], 1e-9)
	assert.Len(t, agg.Counts, 2, "Only populated keys are present before grid completion")
}

// TestMeanDistanceValues verifies the mean is sum over count per key.
func TestMeanDistanceValues(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 6, 9, 14, 30, 0, 0, time.UTC), 7),
	}

	agg := AggregateWeekly(acts)
	means := agg.MeanDistanceValues()

	key := schema.GridKey{Weekday: time.Sunday, Hour: 14}
	require.Contains(t, means, key)
	assert.InDelta(t, 6.0, means[key], 1e-9, "(5 + 7) / 2")
}

// TestValuesMetricSelection verifies the metric switch between counts and
// mean distance.
func TestValuesMetricSelection(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 6, 9, 14, 30, 0, 0, time.UTC), 7),
	}
	agg := AggregateWeekly(acts)
	key := schema.GridKey{Weekday: time.Sunday, Hour: 14}

	assert.Equal(t, 2.0, agg.Values(schema.CountMetric)[key])
	assert.InDelta(t, 6.0, agg.Values(schema.DistanceMetric)[key], 1e-9)
}

func TestSummarize(t *testing.T) {
	acts := []schema.Activity{
		{Sport: schema.SportRunning, StartTime: time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC), DistanceKm: 5, Calories: fptr(320)},
		{Sport: schema.SportRunning, StartTime: time.Date(2024, 5, 20, 18, 0, 0, 0, time.UTC), DistanceKm: 15, Calories: fptr(900)},
		{Sport: schema.SportRunning, StartTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), DistanceKm: 10},
	}

	s := Summarize(acts)
	assert.Equal(t, 3, s.Activities)
	assert.InDelta(t, 30.0, s.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 10.0, s.MeanDistanceKm, 1e-9)
	assert.Equal(t, 15.0, s.MaxDistanceKm)
	assert.InDelta(t, 1220.0, s.TotalCalories, 1e-9, "Nil calories contribute nothing")
	assert.Equal(t, time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC), s.First)
	assert.Equal(t, time.Date(2024, 5, 20, 18, 0, 0, 0, time.UTC), s.Last)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Activities)
	assert.Zero(t, s.MeanDistanceKm, "No division by zero on empty input")
}

// TestWeeklyTotals verifies ISO week bucketing, including the year boundary
// where early January belongs to the previous ISO year.
func TestWeeklyTotals(t *testing.T) {
	acts := []schema.Activity{
		// 2021-01-01 is a Friday in ISO week 53 of 2020.
		mkActivity(schema.SportRunning, time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2021, 1, 4, 9, 0, 0, 0, time.UTC), 8),
		mkActivity(schema.SportRunning, time.Date(2021, 1, 5, 9, 0, 0, 0, time.UTC), 2),
	}

	totals := WeeklyTotals(acts)
	require.Len(t, totals, 2)

	assert.Equal(t, schema.WeekTotal{Year: 2020, Week: 53, Activities: 1, DistanceKm: 5}, totals[0])
	assert.Equal(t, schema.WeekTotal{Year: 2021, Week: 1, Activities: 2, DistanceKm: 10}, totals[1])
}

func TestMonthlyTotals(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 2, 10, 7, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 2, 28, 7, 0, 0, 0, time.UTC), 10),
		mkActivity(schema.SportRunning, time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC), 3),
	}

	totals := MonthlyTotals(acts)
	require.Len(t, totals, 2)
	assert.Equal(t, schema.MonthTotal{Year: 2024, Month: time.January, Activities: 1, DistanceKm: 3}, totals[0])
	assert.Equal(t, schema.MonthTotal{Year: 2024, Month: time.February, Activities: 2, DistanceKm: 15}, totals[1])
}

// TestSportCounts verifies count-descending then name-ascending ordering.
func TestSportCounts(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportCycling, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), 30),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportWalking, time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC), 2),
	}

	counts := SportCounts(acts)
	require.Len(t, counts, 3)
	assert.Equal(t, schema.SportCount{Sport: schema.SportRunning, Count: 2}, counts[0])
	assert.Equal(t, schema.SportCount{Sport: schema.SportCycling, Count: 1}, counts[1], "Ties break by name")
	assert.Equal(t, schema.SportCount{Sport: schema.SportWalking, Count: 1}, counts[2])
}

// TestDailyValues verifies per-day grouping for the calendar heatmap.
func TestDailyValues(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 4, 1, 7, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 4, 1, 19, 0, 0, 0, time.UTC), 7),
		mkActivity(schema.SportRunning, time.Date(2024, 4, 3, 7, 0, 0, 0, time.UTC), 10),
	}

	counts := DailyValues(acts, schema.CountMetric)
	require.Len(t, counts, 2)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), counts[0].Date)
	assert.Equal(t, 2.0, counts[0].Value)
	assert.Equal(t, 1.0, counts[1].Value)

	dist := DailyValues(acts, schema.DistanceMetric)
	require.Len(t, dist, 2)
	assert.InDelta(t, 12.0, dist[0].Value, 1e-9, "Same-day distances sum")
	assert.InDelta(t, 10.0, dist[1].Value, 1e-9)
}
