package contract

import (
	"context"

	"github.com/strideworks/stridemap/schema"
)

// ActivityStore persists imported activities in a SQL backend so that
// analysis commands can run without re-reading the CSV export.
// Implementations must be safe for sequential use from a single goroutine;
// no concurrent access is required by the CLI.
type ActivityStore interface {
	// SaveActivities upserts the given activities, keyed by (start time, sport).
	// It returns the number of rows written.
	SaveActivities(ctx context.Context, acts []schema.Activity) (int, error)

	// ListActivities returns all stored activities ordered by start time.
	ListActivities(ctx context.Context) ([]schema.Activity, error)

	// Status reports backend identity and row counts.
	Status(ctx context.Context) (*schema.StoreStatus, error)

	// Clear removes all stored activities.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
