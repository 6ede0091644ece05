package core

import (
	"time"

	"github.com/strideworks/stridemap/schema"
)

// ByDateRange keeps activities with since <= StartTime < until.
// A zero since or until leaves that side unbounded.
func ByDateRange(acts []schema.Activity, since, until time.Time) []schema.Activity {
	var out []schema.Activity
	for _, a := range acts {
		if !since.IsZero() && a.StartTime.Before(since) {
			continue
		}
		if !until.IsZero() && !a.StartTime.Before(until) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ByMaxDistance removes activities longer than maxKm. These are treated as
// data-entry errors: sessions recorded under the wrong sport, or GPS tracks
// that kept running after the session ended. A maxKm of zero disables the
// cutoff. Applying the filter twice yields the same result as applying it
// once.
func ByMaxDistance(acts []schema.Activity, maxKm float64) []schema.Activity {
	if maxKm <= 0 {
		return acts
	}
	var out []schema.Activity
	for _, a := range acts {
		if a.DistanceKm > maxKm {
			continue
		}
		out = append(out, a)
	}
	return out
}

// BySport keeps activities of the given sport. SportAll keeps everything.
func BySport(acts []schema.Activity, sport schema.SportKind) []schema.Activity {
	if sport == schema.SportAll || sport == "" {
		return acts
	}
	var out []schema.Activity
	for _, a := range acts {
		if a.Sport == sport {
			out = append(out, a)
		}
	}
	return out
}
