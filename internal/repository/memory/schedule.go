// Package memory holds all repository state in process memory for the
// lifetime of a session. Snapshots are stored and returned by value
// semantics: callers receive deep copies and replace months wholesale.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
)

const monthKeyLayout = "2006-01"

type ScheduleRepository struct {
	mu     sync.RWMutex
	months map[string][]schedule.Entry
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		months: make(map[string][]schedule.Entry),
	}
}

func (r *ScheduleRepository) Get(ctx context.Context, month time.Time) ([]schedule.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.months[month.Format(monthKeyLayout)]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	return schedule.Clone(entries), nil
}

func (r *ScheduleRepository) Exists(ctx context.Context, month time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.months[month.Format(monthKeyLayout)]
	return ok, nil
}

func (r *ScheduleRepository) Put(ctx context.Context, month time.Time, entries []schedule.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.months[month.Format(monthKeyLayout)] = schedule.Clone(entries)
	return nil
}
