//go:build database

// Package integration exercises the activity store against real database
// servers started with testcontainers. Run with:
//
//	go test -tags database ./integration/...
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strideworks/stridemap/internal/activitystore"
	"github.com/strideworks/stridemap/schema"
)

func fptr(v float64) *float64 { return &v }

// backendFixture returns a small activity set with both populated and nil
// optional fields, so NULL handling is covered on every backend.
func backendFixture() []schema.Activity {
	return []schema.Activity{
		{
			Sport:      schema.SportRunning,
			StartTime:  time.Date(2024, 6, 2, 14, 5, 0, 0, time.UTC),
			DistanceKm: 5.2,
			Calories:   fptr(321),
			Duration:   "00:28:30",
			AvgPace:    "5:29",
			ElevGainM:  fptr(42),
		},
		{
			Sport:      schema.SportCycling,
			StartTime:  time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC),
			DistanceKm: 40.5,
		},
	}
}

// exerciseStore runs the full store lifecycle against one live backend:
// migrate, save, re-save (upsert), list, status, clear.
func exerciseStore(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, activitystore.Migrate(backend, connStr, -1))

	store, err := activitystore.Open(backend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Clear(ctx))

	acts := backendFixture()
	n, err := store.SaveActivities(ctx, acts)
	require.NoError(t, err)
	assert.Equal(t, len(acts), n)

	// A second import of the same sessions updates rows in place
	updated := backendFixture()
	updated[0].DistanceKm = 21.1
	_, err = store.SaveActivities(ctx, updated)
	require.NoError(t, err)

	got, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(acts), "Upsert must not duplicate rows")

	assert.Equal(t, schema.SportRunning, got[0].Sport)
	assert.Equal(t, 21.1, got[0].DistanceKm)
	require.NotNil(t, got[0].Calories)
	assert.Equal(t, 321.0, *got[0].Calories)
	assert.Equal(t, "00:28:30", got[0].Duration)
	assert.Nil(t, got[1].Calories)
	assert.Empty(t, got[1].Duration)
	assert.True(t, got[0].StartTime.Before(got[1].StartTime), "Listing is ordered by start time")

	status, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, backend, status.Backend)
	assert.Equal(t, len(acts), status.Activities)
	assert.Equal(t, got[0].StartTime.Unix(), status.First.Unix())
	assert.Equal(t, got[1].StartTime.Unix(), status.Last.Unix())
	assert.NotContains(t, status.Location, "secret123", "Location must not leak credentials")

	require.NoError(t, store.Clear(ctx))
	status, err = store.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Activities)
}
