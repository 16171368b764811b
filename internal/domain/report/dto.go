package report

import (
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/filter"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/validator"
)

// ========================================
// STAFF PERFORMANCE REPORT
// ========================================

type PerformanceReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Filters filter.Set `json:"-"`
}

func (r *PerformanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must use the YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must use the YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed closed date range. Call after Validate.
func (r *PerformanceReportRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type PerformanceReport struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees       []EmployeeReport   `json:"employees"`
	Departments     []DepartmentReport `json:"departments"`
	EmployeeTotal   Totals             `json:"employee_total"`
	DepartmentTotal Totals             `json:"department_total"`
}
