package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/report"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

var (
	reportFrom    string
	reportTo      string
	reportFilters []string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the staff performance report for a date range",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date, YYYY-MM-DD (default: first day of current month)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date, YYYY-MM-DD (default: today)")
	reportCmd.Flags().StringArrayVar(&reportFilters, "filter", nil, "Filter rows, type=value (department, designation, name); repeatable")
}

func reportRequest() (report.PerformanceReportRequest, error) {
	now := time.Now()
	req := report.PerformanceReportRequest{
		StartDate: dateutil.DateKey(dateutil.MonthOf(now)),
		EndDate:   dateutil.DateKey(now),
	}
	if reportFrom != "" {
		req.StartDate = reportFrom
	}
	if reportTo != "" {
		req.EndDate = reportTo
	}

	set, err := parseFilters(reportFilters)
	if err != nil {
		return report.PerformanceReportRequest{}, err
	}
	req.Filters = set
	return req, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	req, err := reportRequest()
	if err != nil {
		return err
	}

	rep, err := application.reports.GeneratePerformanceReport(cmd.Context(), req)
	if errors.Is(err, report.ErrNoDataFound) {
		return fmt.Errorf("no schedule data in %s to %s", req.StartDate, req.EndDate)
	}
	if err != nil {
		return err
	}
	cmd.Println(renderReport(rep))
	return nil
}
