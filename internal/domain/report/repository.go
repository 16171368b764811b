package report

import (
	"context"
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
)

// MonthSource supplies the month snapshots a report is built from. Months
// that have no schedule and months that are blocked are skipped by the
// report builder, so implementations may return the corresponding sentinel
// errors freely.
type MonthSource interface {
	MonthEntries(ctx context.Context, month time.Time) ([]schedule.Entry, error)
}
