package history

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
	"github.com/cmlabs-hris/staff-roster-go/internal/fixtures"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/clock"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

type HistoryServiceImpl struct {
	repo history.Repository
	clk  clock.Clock
	seed int64
	log  *zap.Logger
}

func NewHistoryService(repo history.Repository, clk clock.Clock, seed int64, log *zap.Logger) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		repo: repo,
		clk:  clk,
		seed: seed,
		log:  log,
	}
}

// ListMonth returns the activity log for a month, newest first. Months up to
// the current one are seeded with demo entries on first access; future
// months have no history until something actually happens in them.
func (s *HistoryServiceImpl) ListMonth(ctx context.Context, month time.Time) ([]history.Entry, error) {
	month = dateutil.MonthOf(month)

	entries, err := s.repo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 || month.After(dateutil.MonthOf(s.clk.Now())) {
		return entries, nil
	}

	for _, entry := range fixtures.GenerateMonthHistory(month, s.seed) {
		if err := s.repo.Record(ctx, entry); err != nil {
			return nil, err
		}
	}
	s.log.Debug("seeded month history", zap.String("month", month.Format("2006-01")))
	return s.repo.ListByMonth(ctx, month)
}
