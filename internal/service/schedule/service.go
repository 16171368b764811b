package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/employee"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/filter"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/fixtures"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/clock"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

// actorEmail is attributed to schedule changes recorded in the history log.
const actorEmail = "owner@hotel.com"

// ScheduleService coordinates the month/week selection, edit session and
// filter state that the rendering layer works against. All mutating edit
// operations apply to an in-session snapshot; the repository is only written
// on Save, so Cancel falls back to whatever the repository last held.
type ScheduleService struct {
	mu          sync.Mutex
	log         *zap.Logger
	repo        schedule.Repository
	historyRepo history.Repository
	clk         clock.Clock
	employees   []employee.Employee
	seed        int64
	createDelay time.Duration

	selectedMonth time.Time
	weekIndex     int
	editMode      bool
	creating      bool
	filters       filter.Set
	snapshot      []schedule.Entry
	pendingLog    []string
}

func NewScheduleService(repo schedule.Repository, historyRepo history.Repository, clk clock.Clock, seed int64, createDelay time.Duration, log *zap.Logger) *ScheduleService {
	now := clk.Now()
	return &ScheduleService{
		log:           log,
		repo:          repo,
		historyRepo:   historyRepo,
		clk:           clk,
		employees:     fixtures.DefaultEmployees(),
		seed:          seed,
		createDelay:   createDelay,
		selectedMonth: dateutil.MonthOf(now),
		weekIndex:     dateutil.WeekIndexForDate(now),
	}
}

// IsMonthAllowed reports whether a month may hold a schedule at all. Anything
// up to and including the month after the current one is allowed; months
// further out are blocked.
func (s *ScheduleService) IsMonthAllowed(month time.Time) bool {
	limit := dateutil.MonthOf(s.clk.Now()).AddDate(0, 1, 0)
	return !dateutil.MonthOf(month).After(limit)
}

// monthEntries returns the stored entries for a month, generating and storing
// the mock data on first access for months up to the current one. The month
// after the current one only exists once explicitly created; months beyond
// that are blocked.
func (s *ScheduleService) monthEntries(ctx context.Context, month time.Time) ([]schedule.Entry, error) {
	month = dateutil.MonthOf(month)
	if !s.IsMonthAllowed(month) {
		return nil, schedule.ErrMonthBlocked
	}

	exists, err := s.repo.Exists(ctx, month)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.repo.Get(ctx, month)
	}
	if month.After(dateutil.MonthOf(s.clk.Now())) {
		return nil, schedule.ErrScheduleNotFound
	}

	entries := fixtures.GenerateMonthSchedule(month, s.employees, s.seed)
	if err := s.repo.Put(ctx, month, entries); err != nil {
		return nil, fmt.Errorf("failed to store generated schedule: %w", err)
	}
	s.log.Debug("materialized month schedule", zap.String("month", month.Format("2006-01")))
	return s.repo.Get(ctx, month)
}

// MonthEntries exposes materialized month data to collaborating services
// (reports, exports). It never touches the selection or edit state.
func (s *ScheduleService) MonthEntries(ctx context.Context, month time.Time) ([]schedule.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthEntries(ctx, month)
}

func (s *ScheduleService) ensureLoaded(ctx context.Context) error {
	if s.snapshot != nil {
		return nil
	}
	entries, err := s.monthEntries(ctx, s.selectedMonth)
	if err != nil {
		return err
	}
	s.snapshot = entries
	return nil
}

// View assembles the week view for the current selection. It returns
// schedule.ErrScheduleNotFound when the selected month has no schedule yet
// and schedule.ErrMonthBlocked when the month cannot have one.
func (s *ScheduleService) View(ctx context.Context) (schedule.WeekView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return schedule.WeekView{}, err
	}

	days := dateutil.MonthDays(s.selectedMonth)
	totalWeeks := dateutil.TotalWeeks(days)
	view := schedule.WeekView{
		Month:      s.selectedMonth,
		WeekIndex:  s.weekIndex,
		TotalWeeks: totalWeeks,
		Dates:      dateutil.WeekSlice(days, s.weekIndex),
		Entries:    s.filteredEntries(),
		EditMode:   s.editMode,
		Filtered:   len(s.filters) > 0,
		CanGoPrev:  true,
		CanGoNext:  s.weekIndex < totalWeeks-1 || s.IsMonthAllowed(s.selectedMonth.AddDate(0, 1, 0)),
	}
	return view, nil
}

func (s *ScheduleService) filteredEntries() []schedule.Entry {
	if len(s.filters) == 0 {
		return s.snapshot
	}
	filtered := make([]schedule.Entry, 0, len(s.snapshot))
	for _, entry := range s.snapshot {
		if s.filters.Matches(entry.Employee) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// SelectMonth switches the selection to a new month, resetting the week index
// to the first week. When an edit session is open, saveEdits decides whether
// it is committed or discarded before switching.
func (s *ScheduleService) SelectMonth(ctx context.Context, month time.Time, saveEdits bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectMonth(ctx, dateutil.MonthOf(month), 0, saveEdits)
}

func (s *ScheduleService) selectMonth(ctx context.Context, month time.Time, weekIndex int, saveEdits bool) error {
	if !s.IsMonthAllowed(month) {
		return schedule.ErrMonthBlocked
	}
	if s.editMode {
		if saveEdits {
			if err := s.save(ctx); err != nil {
				return err
			}
		} else {
			s.discard()
		}
	}
	s.selectedMonth = month
	s.weekIndex = weekIndex
	s.snapshot = nil
	return nil
}

// NavigateWeek moves the week selection by dir (+1 or -1). Stepping past the
// first or last week of the month crosses into the adjacent month: backward
// lands on that month's last week, forward on its first. Crossing months
// while editing commits or discards the open session per saveEdits.
func (s *ScheduleService) NavigateWeek(ctx context.Context, dir int, saveEdits bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalWeeks := dateutil.TotalWeeks(dateutil.MonthDays(s.selectedMonth))
	next := s.weekIndex + dir

	switch {
	case next < 0:
		prev := s.selectedMonth.AddDate(0, -1, 0)
		last := dateutil.TotalWeeks(dateutil.MonthDays(prev)) - 1
		return s.selectMonth(ctx, prev, last, saveEdits)
	case next > totalWeeks-1:
		return s.selectMonth(ctx, s.selectedMonth.AddDate(0, 1, 0), 0, saveEdits)
	default:
		s.weekIndex = next
		return nil
	}
}

// CreateSchedule materializes a schedule for the selected month after a
// simulated provisioning delay. It returns a channel that is closed once the
// schedule is in place; creation always runs to completion, and when the
// selection still points at the created month the service drops straight into
// edit mode on the fresh data.
func (s *ScheduleService) CreateSchedule(ctx context.Context) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creating {
		return nil, schedule.ErrCreationInFlight
	}
	if !s.IsMonthAllowed(s.selectedMonth) {
		return nil, schedule.ErrMonthBlocked
	}
	exists, err := s.repo.Exists(ctx, s.selectedMonth)
	if err != nil {
		return nil, err
	}
	if exists || s.snapshot != nil {
		return nil, schedule.ErrScheduleExists
	}

	month := s.selectedMonth
	s.creating = true
	done := make(chan struct{})

	go func() {
		defer close(done)
		time.Sleep(s.createDelay)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.creating = false

		entries := fixtures.GenerateMonthSchedule(month, s.employees, s.seed)
		if err := s.repo.Put(context.Background(), month, entries); err != nil {
			s.log.Error("failed to store created schedule", zap.Error(err))
			return
		}
		s.record(context.Background(), fmt.Sprintf("Created schedule for %s", month.Format("January 2006")))
		if s.selectedMonth.Equal(month) {
			s.snapshot = entries
			s.editMode = true
		}
		s.log.Info("schedule created", zap.String("month", month.Format("2006-01")))
	}()

	return done, nil
}

// EnterEdit opens an edit session on the selected month's schedule.
func (s *ScheduleService) EnterEdit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editMode {
		return schedule.ErrAlreadyInEditMode
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.editMode = true
	return nil
}

// Cancel abandons the open edit session and restores the last saved state.
func (s *ScheduleService) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editMode {
		return schedule.ErrNotInEditMode
	}
	s.discard()
	return nil
}

func (s *ScheduleService) discard() {
	s.editMode = false
	s.snapshot = nil
	s.pendingLog = nil
}

// Save commits the edit session: the snapshot is normalized, written to the
// repository and every pending change is recorded in the history log.
func (s *ScheduleService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editMode {
		return schedule.ErrNotInEditMode
	}
	return s.save(ctx)
}

func (s *ScheduleService) save(ctx context.Context) error {
	s.snapshot = schedule.Normalize(s.snapshot)
	if err := s.repo.Put(ctx, s.selectedMonth, s.snapshot); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	for _, msg := range s.pendingLog {
		s.record(ctx, msg)
	}
	s.pendingLog = nil
	s.editMode = false
	s.log.Info("schedule saved", zap.String("month", s.selectedMonth.Format("2006-01")))
	return nil
}

func (s *ScheduleService) record(ctx context.Context, message string) {
	entry := history.Entry{
		ID:         uuid.NewString(),
		ActorEmail: actorEmail,
		OccurredAt: s.clk.Now(),
		Message:    message,
	}
	if err := s.historyRepo.Record(ctx, entry); err != nil {
		s.log.Warn("failed to record history entry", zap.Error(err))
	}
}

// SetAttendance marks an employee Present or Absent on a day of the selected
// month. Requires an open edit session.
func (s *ScheduleService) SetAttendance(ctx context.Context, req schedule.SetAttendanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := req.Validate(); err != nil {
		return err
	}
	if !s.editMode {
		return schedule.ErrNotInEditMode
	}

	before := s.dayRecord(req.EmployeeID, req.DateKey)
	s.snapshot = schedule.SetAttendance(s.snapshot, req.EmployeeID, req.DateKey, schedule.Attendance(req.Status))
	after := s.dayRecord(req.EmployeeID, req.DateKey)
	if before.Attendance != after.Attendance {
		s.pendingLog = append(s.pendingLog, fmt.Sprintf(
			"Changed %s's attendance on %s from %s to %s",
			s.employeeName(req.EmployeeID), req.DateKey, before.Attendance, after.Attendance))
	}
	return nil
}

// SetShift replaces the shift at a given slot. Requires an open edit session.
func (s *ScheduleService) SetShift(ctx context.Context, req schedule.SetShiftRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := req.Validate(); err != nil {
		return err
	}
	if !s.editMode {
		return schedule.ErrNotInEditMode
	}

	s.snapshot = schedule.SetShiftAt(s.snapshot, req.EmployeeID, req.DateKey, req.Index, schedule.ShiftKind(req.Kind))
	s.pendingLog = append(s.pendingLog, fmt.Sprintf(
		"Set %s's shift on %s to %s",
		s.employeeName(req.EmployeeID), req.DateKey, req.Kind))
	return nil
}

// AddShift appends the first unused regular shift kind to a day.
func (s *ScheduleService) AddShift(ctx context.Context, employeeID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editMode {
		return schedule.ErrNotInEditMode
	}
	s.snapshot = schedule.AddShift(s.snapshot, employeeID, date)
	s.pendingLog = append(s.pendingLog, fmt.Sprintf(
		"Added a shift for %s on %s", s.employeeName(employeeID), date))
	return nil
}

// RemoveShift drops the shift at the given slot; removing the last one flips
// the day to Absent.
func (s *ScheduleService) RemoveShift(ctx context.Context, employeeID, date string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editMode {
		return schedule.ErrNotInEditMode
	}
	s.snapshot = schedule.RemoveShift(s.snapshot, employeeID, date, index)
	s.pendingLog = append(s.pendingLog, fmt.Sprintf(
		"Removed a shift for %s on %s", s.employeeName(employeeID), date))
	return nil
}

func (s *ScheduleService) dayRecord(employeeID, date string) schedule.DayRecord {
	for _, entry := range s.snapshot {
		if entry.Employee.ID == employeeID {
			return entry.Days[date]
		}
	}
	return schedule.DayRecord{}
}

func (s *ScheduleService) employeeName(employeeID string) string {
	for _, emp := range s.employees {
		if emp.ID == employeeID {
			return emp.FullName
		}
	}
	return employeeID
}

// SetFilters replaces the active filter set.
func (s *ScheduleService) SetFilters(filters filter.Set) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// Filters returns the active filter set.
func (s *ScheduleService) Filters() filter.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Roster returns the employees in grid order.
func (s *ScheduleService) Roster() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// FilterOptions lists the selectable filter values derived from the roster.
func (s *ScheduleService) FilterOptions() filter.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.BuildOptions(s.employees)
}

// SelectedMonth returns the month the view currently points at.
func (s *ScheduleService) SelectedMonth() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedMonth
}

// EditMode reports whether an edit session is open.
func (s *ScheduleService) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

// OnDuty builds the who-is-present-today view grouped by department. It reads
// the month containing today regardless of the current selection, so an open
// edit session on another month does not bleed into it.
func (s *ScheduleService) OnDuty(ctx context.Context) (schedule.OnDutyView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	today := dateutil.DateKey(now)
	month := dateutil.MonthOf(now)

	var entries []schedule.Entry
	if s.selectedMonth.Equal(month) && s.snapshot != nil {
		entries = s.snapshot
	} else {
		var err error
		entries, err = s.monthEntries(ctx, month)
		if err != nil {
			return schedule.OnDutyView{}, err
		}
	}

	view := schedule.OnDutyView{Date: now, TotalStaff: len(entries)}
	byDept := make(map[string][]schedule.OnDutyEmployee)
	var order []string
	for _, entry := range entries {
		record, ok := entry.Days[today]
		if !ok || record.Attendance != schedule.AttendancePresent {
			view.AbsentCount++
			continue
		}
		dept := entry.Employee.Department
		if _, seen := byDept[dept]; !seen {
			order = append(order, dept)
		}
		byDept[dept] = append(byDept[dept], schedule.OnDutyEmployee{
			EmployeeID:  entry.Employee.ID,
			FullName:    entry.Employee.FullName,
			Designation: entry.Employee.Designation,
			Shifts:      record.Shifts,
		})
		view.PresentCount++
	}

	for _, dept := range order {
		view.Departments = append(view.Departments, schedule.OnDutyDepartment{
			Department: dept,
			Employees:  byDept[dept],
		})
	}
	return view, nil
}
