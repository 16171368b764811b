package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/report"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

const (
	nameColWidth = 26
	dayColWidth  = 15
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	todayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	ghostStyle   = lipgloss.NewStyle().Faint(true)
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	absentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	metaStyle    = lipgloss.NewStyle().Faint(true)
	editStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width-1] + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

// renderWeekView draws one grid page: the Monday-aligned week as columns,
// one row per employee. Days belonging to an adjacent month render as ghost
// cells; today's column header is highlighted.
func renderWeekView(view schedule.WeekView, companyName string, now time.Time) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", companyName, view.Month.Format("January 2006"))))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("Week %d of %d", view.WeekIndex+1, view.TotalWeeks)))
	if view.EditMode {
		b.WriteString("  ")
		b.WriteString(editStyle.Render("[editing]"))
	}
	if view.Filtered {
		b.WriteString("  ")
		b.WriteString(metaStyle.Render("[filtered]"))
	}
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(pad("Staff", nameColWidth)))
	for _, day := range view.Dates {
		label := pad(day.Format("Mon 02 Jan"), dayColWidth)
		switch {
		case dateutil.SameDay(day, now):
			b.WriteString(todayStyle.Render(label))
		case !dateutil.IsInMonth(day, view.Month):
			b.WriteString(ghostStyle.Render(label))
		default:
			b.WriteString(headerStyle.Render(label))
		}
	}
	b.WriteString("\n")

	for _, entry := range view.Entries {
		b.WriteString(pad(entry.Employee.FullName, nameColWidth))
		for _, day := range view.Dates {
			if !dateutil.IsInMonth(day, view.Month) {
				b.WriteString(ghostStyle.Render(pad("·", dayColWidth)))
				continue
			}
			rec, ok := entry.Days[dateutil.DateKey(day)]
			b.WriteString(renderDayCell(rec, ok))
		}
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(pad(fmt.Sprintf("  %s · %s", entry.Employee.Department, entry.Employee.Designation), nameColWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render(navigationHint(view)))
	b.WriteString("\n")
	return b.String()
}

func renderDayCell(rec schedule.DayRecord, ok bool) string {
	if !ok {
		return pad("", dayColWidth)
	}
	if rec.Attendance != schedule.AttendancePresent {
		return absentStyle.Render(pad("Absent", dayColWidth))
	}
	kinds := make([]string, len(rec.Shifts))
	for i, kind := range rec.Shifts {
		kinds[i] = string(kind)
	}
	return presentStyle.Render(pad(strings.Join(kinds, "/"), dayColWidth))
}

func navigationHint(view schedule.WeekView) string {
	var parts []string
	if view.CanGoPrev {
		parts = append(parts, "prev: earlier week")
	}
	if view.CanGoNext {
		parts = append(parts, "next: later week")
	}
	return strings.Join(parts, " · ")
}

func renderOnDuty(view schedule.OnDutyView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("On duty — %s", view.Date.Format("Monday, 2 January 2006"))))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%d of %d staff present (%d absent)", view.PresentCount, view.TotalStaff, view.AbsentCount)))
	b.WriteString("\n\n")

	for _, dept := range view.Departments {
		b.WriteString(headerStyle.Render(dept.Department))
		b.WriteString("\n")
		for _, emp := range dept.Employees {
			kinds := make([]string, len(emp.Shifts))
			for i, kind := range emp.Shifts {
				kinds[i] = string(kind)
			}
			b.WriteString(fmt.Sprintf("  %s (%s): %s\n", emp.FullName, emp.Designation, presentStyle.Render(strings.Join(kinds, ", "))))
		}
	}
	return b.String()
}

func renderHistory(month time.Time, entries []history.Entry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Activity — %s", month.Format("January 2006"))))
	b.WriteString("\n\n")
	if len(entries) == 0 {
		b.WriteString(metaStyle.Render("No activity recorded for this month."))
		b.WriteString("\n")
		return b.String()
	}

	for _, entry := range entries {
		b.WriteString(metaStyle.Render(entry.OccurredAt.Format("2006-01-02 15:04")))
		b.WriteString(fmt.Sprintf("  %s  %s\n", headerStyle.Render(entry.ActorEmail), entry.Message))
	}
	return b.String()
}

func renderReport(rep report.PerformanceReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Staff performance %s to %s", rep.PeriodStart, rep.PeriodEnd)))
	b.WriteString("\n\n")

	row := func(name, dept string, present, absent, percent int) string {
		return fmt.Sprintf("%s%s%s%s%s\n",
			pad(name, nameColWidth), pad(dept, 16),
			pad(fmt.Sprintf("%d", present), 9), pad(fmt.Sprintf("%d", absent), 8),
			pad(fmt.Sprintf("%d%%", percent), 6))
	}

	b.WriteString(headerStyle.Render(pad("Staff", nameColWidth) + pad("Department", 16) + pad("Present", 9) + pad("Absent", 8) + pad("Rate", 6)))
	b.WriteString("\n")
	for _, emp := range rep.Employees {
		b.WriteString(row(emp.FullName, emp.Department, emp.TotalPresent, emp.TotalAbsent, emp.PresentPercent))
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("By department"))
	b.WriteString("\n")
	for _, dept := range rep.Departments {
		b.WriteString(row(dept.Department, "", dept.TotalPresent, dept.TotalAbsent, dept.PresentPercent))
	}
	b.WriteString("\n")
	b.WriteString(row("Total", "", rep.EmployeeTotal.TotalPresent, rep.EmployeeTotal.TotalAbsent, rep.EmployeeTotal.PresentPercent))
	b.WriteString(metaStyle.Render(fmt.Sprintf("Generated at %s", rep.GeneratedAt)))
	b.WriteString("\n")
	return b.String()
}
