package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strideworks/stridemap/core"
	"github.com/strideworks/stridemap/internal/activitystore"
	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

func storeFixture() []schema.Activity {
	return []schema.Activity{
		{Sport: schema.SportRunning, StartTime: time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC), DistanceKm: 5},
		{Sport: schema.SportRunning, StartTime: time.Date(2024, 6, 9, 14, 30, 0, 0, time.UTC), DistanceKm: 7},
		{Sport: schema.SportCycling, StartTime: time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC), DistanceKm: 40},
		{Sport: schema.SportRunning, StartTime: time.Date(2024, 6, 4, 7, 0, 0, 0, time.UTC), DistanceKm: 80}, // outlier
	}
}

func TestLoadActivitiesFromStore(t *testing.T) {
	mockStore := new(activitystore.MockStore)
	mockStore.On("ListActivities", context.Background()).Return(storeFixture(), nil)

	cfg := &contract.Config{
		FromStore:     true,
		Sport:         schema.SportRunning,
		MaxDistanceKm: 60,
		WeekdayOrder:  schema.SundayFirst,
	}

	acts, err := core.LoadActivities(context.Background(), cfg, mockStore)
	require.NoError(t, err)
	require.Len(t, acts, 2, "Cycling and the 80 km outlier are filtered out")
	for _, a := range acts {
		assert.Equal(t, schema.SportRunning, a.Sport)
		assert.LessOrEqual(t, a.DistanceKm, 60.0)
	}
	mockStore.AssertExpectations(t)
}

func TestLoadActivitiesFromStoreNilStore(t *testing.T) {
	cfg := &contract.Config{FromStore: true, MaxDistanceKm: 60}
	_, err := core.LoadActivities(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestGetWeeklyHeatmapResults(t *testing.T) {
	mockStore := new(activitystore.MockStore)
	mockStore.On("ListActivities", context.Background()).Return(storeFixture(), nil)

	cfg := &contract.Config{
		FromStore:     true,
		Sport:         schema.SportRunning,
		MaxDistanceKm: 60,
		WeekdayOrder:  schema.SundayFirst,
	}

	cells, err := core.GetWeeklyHeatmapResults(context.Background(), cfg, mockStore, schema.DistanceMetric)
	require.NoError(t, err)
	require.Len(t, cells, schema.GridSize)

	var nonZero int
	for _, c := range cells {
		if c.Value != 0 {
			nonZero++
			assert.Equal(t, time.Sunday, c.Weekday)
			assert.Equal(t, 14, c.Hour)
			assert.InDelta(t, 6.0, c.Value, 1e-9, "Mean of 5 km and 7 km")
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestGetSummaryResults(t *testing.T) {
	mockStore := new(activitystore.MockStore)
	mockStore.On("ListActivities", context.Background()).Return(storeFixture(), nil)

	cfg := &contract.Config{
		FromStore:     true,
		Sport:         schema.SportAll,
		MaxDistanceKm: 100,
		WeekdayOrder:  schema.SundayFirst,
	}

	report, err := core.GetSummaryResults(context.Background(), cfg, mockStore)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Stats.Activities)
	assert.NotEmpty(t, report.Weekly)
	assert.NotEmpty(t, report.Monthly)
	require.Len(t, report.Sports, 2)
	assert.Equal(t, schema.SportRunning, report.Sports[0].Sport)
}
