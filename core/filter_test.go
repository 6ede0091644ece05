package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strideworks/stridemap/schema"
)

// mkActivity builds a minimal activity for filter tests.
func mkActivity(sport schema.SportKind, start time.Time, distKm float64) schema.Activity {
	return schema.Activity{Sport: sport, StartTime: start, DistanceKm: distKm}
}

func TestByDateRange(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), 5),
		mkActivity(schema.SportRunning, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 6),
		mkActivity(schema.SportRunning, time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC), 7),
		mkActivity(schema.SportRunning, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 8),
	}

	tests := []struct {
		name         string
		since, until time.Time
		wantDist     []float64
	}{
		{
			name:     "unbounded keeps everything",
			wantDist: []float64{5, 6, 7, 8},
		},
		{
			name:     "since is inclusive",
			since:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDist: []float64{6, 7, 8},
		},
		{
			name:     "until is exclusive",
			until:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDist: []float64{5, 6, 7},
		},
		{
			name:     "half-open window",
			since:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			until:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDist: []float64{6, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByDateRange(acts, tt.since, tt.until)
			var dists []float64
			for _, a := range got {
				dists = append(dists, a.DistanceKm)
			}
			assert.Equal(t, tt.wantDist, dists)
		})
	}
}

// TestByMaxDistance verifies the outlier cutoff keeps values at the threshold
// and removes values above it.
func TestByMaxDistance(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), 10),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC), 60),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC), 65),
	}

	got := ByMaxDistance(acts, 60)
	require.Len(t, got, 2, "65 km is above the cutoff, 60 km is not")
	assert.Equal(t, 10.0, got[0].DistanceKm)
	assert.Equal(t, 60.0, got[1].DistanceKm)
}

// TestByMaxDistanceDisabled verifies that a zero cutoff keeps everything,
// matching the "--max-distance 0 disables" contract.
func TestByMaxDistanceDisabled(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), 10),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC), 65),
	}

	got := ByMaxDistance(acts, 0)
	assert.Equal(t, acts, got)
}

// TestByMaxDistanceIdempotent verifies that reapplying the filter is a no-op.
func TestByMaxDistanceIdempotent(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), 12),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC), 80),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC), 42.2),
	}

	once := ByMaxDistance(acts, 60)
	twice := ByMaxDistance(once, 60)
	assert.Equal(t, once, twice)
}

func TestBySport(t *testing.T) {
	acts := []schema.Activity{
		mkActivity(schema.SportRunning, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), 10),
		mkActivity(schema.SportCycling, time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC), 40),
		mkActivity(schema.SportRunning, time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC), 5),
	}

	running := BySport(acts, schema.SportRunning)
	require.Len(t, running, 2)
	for _, a := range running {
		assert.Equal(t, schema.SportRunning, a.Sport)
	}

	all := BySport(acts, schema.SportAll)
	assert.Len(t, all, 3, "SportAll must pass everything through")
}
