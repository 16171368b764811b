package schedule

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/validator"
)

type SetAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	DateKey    string `json:"date"`
	Status     string `json:"status"`
}

func (r *SetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.DateKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Status, AttendanceValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(AttendanceValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	DateKey    string `json:"date"`
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
}

func (r *SetShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.DateKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}
	if r.Index < 0 || r.Index >= MaxShiftsPerDay {
		errs = append(errs, validator.ValidationError{
			Field:   "index",
			Message: "index must be between 0 and 3",
		})
	}
	if !validator.IsInSlice(r.Kind, ShiftKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: " + strings.Join(ShiftKindValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WeekView is the render-ready slice of state for one grid page: the
// Monday-aligned week, the filtered entries and the navigation flags.
type WeekView struct {
	Month      time.Time
	WeekIndex  int
	TotalWeeks int
	Dates      []time.Time
	Entries    []Entry
	EditMode   bool
	Filtered   bool
	CanGoPrev  bool
	CanGoNext  bool
}

// OnDutyView summarizes who is present today, grouped by department.
type OnDutyView struct {
	Date         time.Time
	TotalStaff   int
	PresentCount int
	AbsentCount  int
	Departments  []OnDutyDepartment
}

type OnDutyDepartment struct {
	Department string
	Employees  []OnDutyEmployee
}

type OnDutyEmployee struct {
	EmployeeID  string
	FullName    string
	Designation string
	Shifts      []ShiftKind
}
