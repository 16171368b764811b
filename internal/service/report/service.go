package report

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/report"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/clock"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

type ReportServiceImpl struct {
	source report.MonthSource
	clk    clock.Clock
	log    *zap.Logger
}

func NewReportService(source report.MonthSource, clk clock.Clock, log *zap.Logger) report.ReportService {
	return &ReportServiceImpl{
		source: source,
		clk:    clk,
		log:    log,
	}
}

// GeneratePerformanceReport builds the per-employee and per-department
// attendance rollup for a closed date range. Months inside the range that
// have no schedule are skipped; their days simply contribute nothing.
func (s *ReportServiceImpl) GeneratePerformanceReport(ctx context.Context, req report.PerformanceReportRequest) (report.PerformanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.PerformanceReport{}, err
	}
	start, end := req.Range()

	merged, err := s.collectRange(ctx, start, end)
	if err != nil {
		return report.PerformanceReport{}, err
	}
	if len(merged) == 0 {
		return report.PerformanceReport{}, report.ErrNoDataFound
	}

	var employees []report.EmployeeReport
	for _, entry := range merged {
		if !req.Filters.Matches(entry.Employee) {
			continue
		}
		employees = append(employees, report.BuildEmployeeReport(entry, start, end))
	}

	departments := report.BuildDepartmentReports(employees)
	out := report.PerformanceReport{
		PeriodStart:     req.StartDate,
		PeriodEnd:       req.EndDate,
		GeneratedAt:     s.clk.Now().Format(time.RFC3339),
		Employees:       employees,
		Departments:     departments,
		EmployeeTotal:   report.BuildTotals(employees),
		DepartmentTotal: report.BuildTotals(employees),
	}
	s.log.Info("performance report generated",
		zap.String("period_start", req.StartDate),
		zap.String("period_end", req.EndDate),
		zap.Int("employees", len(employees)))
	return out, nil
}

// collectRange merges the month snapshots covering [start, end] into one
// entry per employee, keyed by employee ID. Day keys never collide across
// months, so merging is a plain map union.
func (s *ReportServiceImpl) collectRange(ctx context.Context, start, end time.Time) ([]schedule.Entry, error) {
	byID := make(map[string]*schedule.Entry)
	var order []string

	for month := dateutil.MonthOf(start); !month.After(end); month = month.AddDate(0, 1, 0) {
		entries, err := s.source.MonthEntries(ctx, month)
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, schedule.ErrMonthBlocked) {
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			target, ok := byID[entry.Employee.ID]
			if !ok {
				clone := schedule.Entry{Employee: entry.Employee, Days: map[string]schedule.DayRecord{}}
				byID[entry.Employee.ID] = &clone
				order = append(order, entry.Employee.ID)
				target = &clone
			}
			for key, rec := range entry.Days {
				target.Days[key] = rec
			}
		}
	}

	out := make([]schedule.Entry, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}
