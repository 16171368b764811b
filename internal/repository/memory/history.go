package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
)

type HistoryRepository struct {
	mu      sync.RWMutex
	entries []history.Entry
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Record(ctx context.Context, entry history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

func (r *HistoryRepository) ListByMonth(ctx context.Context, month time.Time) ([]history.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []history.Entry
	for _, e := range r.entries {
		if e.OccurredAt.Year() == month.Year() && e.OccurredAt.Month() == month.Month() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out, nil
}
