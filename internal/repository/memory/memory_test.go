package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/fixtures"
)

func TestScheduleRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository()
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)

	_, err := repo.Get(ctx, march)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	exists, err := repo.Exists(ctx, march)
	require.NoError(t, err)
	assert.False(t, exists)

	entries := fixtures.GenerateMonthSchedule(march, fixtures.DefaultEmployees(), 1)
	require.NoError(t, repo.Put(ctx, march, entries))

	exists, err = repo.Exists(ctx, march)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.Get(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	// any day of the month addresses the same snapshot
	midMonth := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.Local)
	got, err = repo.Get(ctx, midMonth)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestScheduleRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository()
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)

	entries := fixtures.GenerateMonthSchedule(march, fixtures.DefaultEmployees(), 1)
	require.NoError(t, repo.Put(ctx, march, entries))

	got, err := repo.Get(ctx, march)
	require.NoError(t, err)
	got[0].Days["2025-03-01"] = schedule.DayRecord{Attendance: schedule.AttendancePresent}

	again, err := repo.Get(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, entries, again, "mutating a returned snapshot must not leak into the store")
}

func TestHistoryRepository_ListByMonthNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository()

	at := func(day int) time.Time {
		return time.Date(2025, time.March, day, 12, 0, 0, 0, time.Local)
	}
	require.NoError(t, repo.Record(ctx, history.Entry{ID: "a", OccurredAt: at(3), Message: "first"}))
	require.NoError(t, repo.Record(ctx, history.Entry{ID: "b", OccurredAt: at(20), Message: "second"}))
	require.NoError(t, repo.Record(ctx, history.Entry{ID: "c", OccurredAt: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), Message: "other month"}))

	got, err := repo.ListByMonth(ctx, at(1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}
