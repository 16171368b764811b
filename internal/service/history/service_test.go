package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/clock"
	"github.com/cmlabs-hris/staff-roster-go/internal/repository/memory"
	historysvc "github.com/cmlabs-hris/staff-roster-go/internal/service/history"
)

var testNow = time.Date(2025, time.March, 18, 10, 0, 0, 0, time.Local)

func newTestService() (*historysvc.HistoryServiceImpl, *memory.HistoryRepository) {
	repo := memory.NewHistoryRepository()
	return historysvc.NewHistoryService(repo, clock.Fixed{T: testNow}, 42, zap.NewNop()), repo
}

func TestListMonthSeedsPastMonths(t *testing.T) {
	svc, _ := newTestService()

	entries, err := svc.ListMonth(context.Background(), time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].OccurredAt.Before(entries[i].OccurredAt), "entries must be newest first")
	}
	for _, e := range entries {
		assert.Equal(t, time.January, e.OccurredAt.Month())
	}
}

func TestListMonthSeedsOnlyOnce(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	month := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local)

	first, err := svc.ListMonth(ctx, month)
	require.NoError(t, err)
	second, err := svc.ListMonth(ctx, month)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}

func TestListMonthFutureMonthIsEmpty(t *testing.T) {
	svc, _ := newTestService()

	entries, err := svc.ListMonth(context.Background(), time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListMonthKeepsRecordedEntries(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	recorded := history.Entry{
		ID:         "real-entry",
		ActorEmail: "owner@hotel.com",
		OccurredAt: testNow,
		Message:    "Created schedule for March 2025",
	}
	require.NoError(t, repo.Record(ctx, recorded))

	entries, err := svc.ListMonth(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, entries, 1, "an already-populated month must not be reseeded")
	assert.Equal(t, "real-entry", entries[0].ID)
}
