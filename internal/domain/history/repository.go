package history

import (
	"context"
	"time"
)

type Repository interface {
	// Record appends an entry to the log.
	Record(ctx context.Context, entry Entry) error

	// ListByMonth returns the entries whose OccurredAt falls in the month
	// containing month, newest first.
	ListByMonth(ctx context.Context, month time.Time) ([]Entry, error)
}
