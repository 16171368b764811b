// Package report rolls per-employee daily records into totals and
// percentages over an arbitrary date range. Reports are derived values:
// recomputed on every query, never stored.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

// ShiftTally counts shift-kind occurrences across the Present days of a
// range. A day with two shifts contributes to two counters.
type ShiftTally struct {
	Morning   int `json:"morning"`
	Middle    int `json:"middle"`
	Afternoon int `json:"afternoon"`
	Night     int `json:"night"`
	AllDay    int `json:"all_day"`
}

func (t *ShiftTally) add(kind schedule.ShiftKind) {
	switch kind {
	case schedule.ShiftMorning:
		t.Morning++
	case schedule.ShiftMiddle:
		t.Middle++
	case schedule.ShiftAfternoon:
		t.Afternoon++
	case schedule.ShiftNight:
		t.Night++
	case schedule.ShiftAllDay:
		t.AllDay++
	}
}

func (t *ShiftTally) merge(other ShiftTally) {
	t.Morning += other.Morning
	t.Middle += other.Middle
	t.Afternoon += other.Afternoon
	t.Night += other.Night
	t.AllDay += other.AllDay
}

type EmployeeReport struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`

	TotalPresent   int        `json:"total_present"`
	TotalAbsent    int        `json:"total_absent"`
	PresentPercent int        `json:"present_percent"`
	Shifts         ShiftTally `json:"shifts"`
}

type DepartmentReport struct {
	Department string `json:"department"`

	TotalPresent   int        `json:"total_present"`
	TotalAbsent    int        `json:"total_absent"`
	PresentPercent int        `json:"present_percent"`
	Shifts         ShiftTally `json:"shifts"`
}

// Totals is the grand-total row of a report table. Percentages are
// recomputed from the summed counts, not averaged across rows.
type Totals struct {
	TotalPresent   int        `json:"total_present"`
	TotalAbsent    int        `json:"total_absent"`
	PresentPercent int        `json:"present_percent"`
	Shifts         ShiftTally `json:"shifts"`
}

// CalculatePercentage returns round(100*part/total), and 0 when total is 0.
func CalculatePercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// BuildEmployeeReport counts one employee's attendance and shifts over the
// closed range [start, end]. Days without a materialized record are
// excluded, not counted as absent.
func BuildEmployeeReport(entry schedule.Entry, start, end time.Time) EmployeeReport {
	rep := EmployeeReport{
		EmployeeID:  entry.Employee.ID,
		FullName:    entry.Employee.FullName,
		Department:  entry.Employee.Department,
		Designation: entry.Employee.Designation,
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rec, ok := entry.Days[dateutil.DateKey(d)]
		if !ok {
			continue
		}
		switch rec.Attendance {
		case schedule.AttendancePresent:
			rep.TotalPresent++
			for _, kind := range rec.Shifts {
				rep.Shifts.add(kind)
			}
		case schedule.AttendanceAbsent:
			rep.TotalAbsent++
		}
	}

	rep.PresentPercent = CalculatePercentage(rep.TotalPresent, rep.TotalPresent+rep.TotalAbsent)
	return rep
}

// BuildDepartmentReports groups employee reports by department, summing
// every numeric field, sorted alphabetically by department name.
func BuildDepartmentReports(employeeReports []EmployeeReport) []DepartmentReport {
	byDept := make(map[string]*DepartmentReport)
	for _, emp := range employeeReports {
		dept, ok := byDept[emp.Department]
		if !ok {
			dept = &DepartmentReport{Department: emp.Department}
			byDept[emp.Department] = dept
		}
		dept.TotalPresent += emp.TotalPresent
		dept.TotalAbsent += emp.TotalAbsent
		dept.Shifts.merge(emp.Shifts)
	}

	out := make([]DepartmentReport, 0, len(byDept))
	for _, dept := range byDept {
		dept.PresentPercent = CalculatePercentage(dept.TotalPresent, dept.TotalPresent+dept.TotalAbsent)
		out = append(out, *dept)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Department < out[j].Department
	})
	return out
}

// BuildTotals sums employee reports into the grand-total row.
func BuildTotals(employeeReports []EmployeeReport) Totals {
	var totals Totals
	for _, emp := range employeeReports {
		totals.TotalPresent += emp.TotalPresent
		totals.TotalAbsent += emp.TotalAbsent
		totals.Shifts.merge(emp.Shifts)
	}
	totals.PresentPercent = CalculatePercentage(totals.TotalPresent, totals.TotalPresent+totals.TotalAbsent)
	return totals
}
