package schedule

import (
	"context"
	"time"
)

// Repository stores one snapshot per calendar month. Implementations hold
// state in memory only; snapshots are replaced wholesale, never mutated in
// place.
type Repository interface {
	// Get returns the stored snapshot for the month containing month.
	// Returns ErrScheduleNotFound when nothing has been materialized.
	Get(ctx context.Context, month time.Time) ([]Entry, error)

	// Exists reports whether a snapshot has been materialized for the month.
	Exists(ctx context.Context, month time.Time) (bool, error)

	// Put replaces the snapshot for the month.
	Put(ctx context.Context, month time.Time, entries []Entry) error
}
