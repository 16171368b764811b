package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/filter"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/clock"
	"github.com/cmlabs-hris/staff-roster-go/internal/repository/memory"
	schedulesvc "github.com/cmlabs-hris/staff-roster-go/internal/service/schedule"
)

// March 18, 2025 is a Tuesday in the third week of the month.
var testNow = time.Date(2025, time.March, 18, 10, 0, 0, 0, time.Local)

func newTestService(t *testing.T) (*schedulesvc.ScheduleService, *memory.HistoryRepository) {
	t.Helper()
	historyRepo := memory.NewHistoryRepository()
	svc := schedulesvc.NewScheduleService(
		memory.NewScheduleRepository(),
		historyRepo,
		clock.Fixed{T: testNow},
		42,
		time.Millisecond,
		zap.NewNop(),
	)
	return svc, historyRepo
}

func TestViewDefaultsToCurrentWeek(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.View(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), view.Month)
	assert.Equal(t, 2, view.WeekIndex, "March 18 falls in the third week")
	assert.Equal(t, 5, view.TotalWeeks)
	assert.Len(t, view.Entries, 12)
	assert.False(t, view.EditMode)
	assert.True(t, view.CanGoPrev)
	assert.True(t, view.CanGoNext)
}

func TestPastMonthMaterializesOnSelect(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.SelectMonth(context.Background(), time.Date(2024, time.November, 1, 0, 0, 0, 0, time.Local), false))

	view, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, view.WeekIndex)
	assert.Len(t, view.Entries, 12)
}

func TestNextMonthRequiresCreation(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.SelectMonth(context.Background(), time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), false))

	_, err := svc.View(context.Background())
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestMonthBeyondNextIsBlocked(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.SelectMonth(context.Background(), time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local), false)
	assert.ErrorIs(t, err, schedule.ErrMonthBlocked)
}

func TestCreateScheduleEntersEditMode(t *testing.T) {
	svc, historyRepo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SelectMonth(ctx, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), false))

	done, err := svc.CreateSchedule(ctx)
	require.NoError(t, err)
	<-done

	view, err := svc.View(ctx)
	require.NoError(t, err)
	assert.True(t, view.EditMode)
	assert.Len(t, view.Entries, 12)

	entries, err := historyRepo.ListByMonth(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Created schedule for April 2025", entries[0].Message)
}

func TestCreateScheduleRejectsExisting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.View(ctx) // materializes the current month
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx)
	assert.ErrorIs(t, err, schedule.ErrScheduleExists)
}

func TestEditRequiresEditMode(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.View(ctx)
	require.NoError(t, err)

	err = svc.SetAttendance(ctx, schedule.SetAttendanceRequest{
		EmployeeID: "staff-1",
		DateKey:    "2025-03-18",
		Status:     string(schedule.AttendanceAbsent),
	})
	assert.ErrorIs(t, err, schedule.ErrNotInEditMode)
}

func TestSaveCommitsAndCancelReverts(t *testing.T) {
	svc, historyRepo := newTestService(t)
	ctx := context.Background()

	_, err := svc.View(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.EnterEdit(ctx))

	req := schedule.SetAttendanceRequest{
		EmployeeID: "staff-1",
		DateKey:    "2025-03-18",
		Status:     string(schedule.AttendanceAbsent),
	}
	require.NoError(t, svc.SetAttendance(ctx, req))
	require.NoError(t, svc.Save(ctx))

	view, err := svc.View(ctx)
	require.NoError(t, err)
	assert.False(t, view.EditMode)
	assert.Equal(t, schedule.AttendanceAbsent, dayOf(t, view.Entries, "staff-1", "2025-03-18").Attendance)

	logged, err := historyRepo.ListByMonth(ctx, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, logged)

	// A second edit session that is cancelled must not survive.
	baseline := dayOf(t, view.Entries, "staff-1", "2025-03-19")
	flipped := schedule.AttendancePresent
	if baseline.Attendance == schedule.AttendancePresent {
		flipped = schedule.AttendanceAbsent
	}
	require.NoError(t, svc.EnterEdit(ctx))
	req.DateKey = "2025-03-19"
	req.Status = string(flipped)
	require.NoError(t, svc.SetAttendance(ctx, req))
	require.NoError(t, svc.Cancel(ctx))

	view, err = svc.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, baseline.Attendance, dayOf(t, view.Entries, "staff-1", "2025-03-19").Attendance,
		"a cancelled change must not persist")
}

func TestWeekNavigationCrossesMonths(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Walk backward from week 2 of March past week 0 into February.
	require.NoError(t, svc.NavigateWeek(ctx, -1, false))
	require.NoError(t, svc.NavigateWeek(ctx, -1, false))
	require.NoError(t, svc.NavigateWeek(ctx, -1, false))

	view, err := svc.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local), view.Month)
	assert.Equal(t, view.TotalWeeks-1, view.WeekIndex, "crossing backward lands on the last week")
}

func TestWeekNavigationForwardIntoMissingMonth(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// March 2025 has five weeks; three steps forward from week 2 cross into April.
	require.NoError(t, svc.NavigateWeek(ctx, 1, false))
	require.NoError(t, svc.NavigateWeek(ctx, 1, false))
	require.NoError(t, svc.NavigateWeek(ctx, 1, false))

	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), svc.SelectedMonth())
	_, err := svc.View(ctx)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestSwitchingMonthsSavesOpenEdits(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.View(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.EnterEdit(ctx))
	require.NoError(t, svc.SetAttendance(ctx, schedule.SetAttendanceRequest{
		EmployeeID: "staff-1",
		DateKey:    "2025-03-18",
		Status:     string(schedule.AttendanceAbsent),
	}))

	require.NoError(t, svc.SelectMonth(ctx, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local), true))
	assert.False(t, svc.EditMode())

	require.NoError(t, svc.SelectMonth(ctx, testNow, false))
	view, err := svc.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedule.AttendanceAbsent, dayOf(t, view.Entries, "staff-1", "2025-03-18").Attendance)
}

func TestFiltersNarrowTheView(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.SetFilters(filter.Set{{Type: filter.TypeDepartment, Value: "Kitchen"}})

	view, err := svc.View(ctx)
	require.NoError(t, err)
	assert.True(t, view.Filtered)
	require.NotEmpty(t, view.Entries)
	for _, entry := range view.Entries {
		assert.Equal(t, "Kitchen", entry.Employee.Department)
	}

	svc.SetFilters(nil)
	view, err = svc.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Entries, 12)
}

func TestOnDutyCountsAddUp(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.OnDuty(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, view.TotalStaff)
	assert.Equal(t, view.TotalStaff, view.PresentCount+view.AbsentCount)
	counted := 0
	for _, dept := range view.Departments {
		counted += len(dept.Employees)
	}
	assert.Equal(t, view.PresentCount, counted)
}

func dayOf(t *testing.T, entries []schedule.Entry, employeeID, dateKey string) schedule.DayRecord {
	t.Helper()
	for _, entry := range entries {
		if entry.Employee.ID == employeeID {
			return entry.Days[dateKey]
		}
	}
	t.Fatalf("employee %s not found", employeeID)
	return schedule.DayRecord{}
}
