package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/report"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/validator"
)

var (
	exportFormat  string
	exportMonth   string
	exportOut     string
	exportFilters []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the schedule (xlsx, csv) or the performance report (pdf)",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format: xlsx, csv, pdf")
	exportCmd.Flags().StringVar(&exportMonth, "month", "", "Month to export, YYYY-MM (default: current month)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory (default: EXPORT_DIR)")
	exportCmd.Flags().StringArrayVar(&exportFilters, "filter", nil, "Filter rows, type=value (department, designation, name); repeatable")
}

func runExport(cmd *cobra.Command, args []string) error {
	month := dateutil.MonthOf(time.Now())
	if exportMonth != "" {
		parsed, ok := validator.IsValidMonth(exportMonth)
		if !ok {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", exportMonth)
		}
		month = parsed
	}

	set, err := parseFilters(exportFilters)
	if err != nil {
		return err
	}

	var (
		buf      *bytes.Buffer
		filename string
	)
	switch exportFormat {
	case "xlsx":
		buf, filename, err = application.exports.ExportScheduleXLSX(cmd.Context(), month, set)
	case "csv":
		buf, filename, err = application.exports.ExportScheduleCSV(cmd.Context(), month, set)
	case "pdf":
		req := report.PerformanceReportRequest{
			StartDate: dateutil.DateKey(month),
			EndDate:   dateutil.DateKey(lastDayOf(month)),
			Filters:   set,
		}
		buf, filename, err = application.exports.ExportReportPDF(cmd.Context(), req)
	default:
		return fmt.Errorf("unknown format %q, expected xlsx, csv or pdf", exportFormat)
	}
	if err != nil {
		return err
	}

	dir := application.cfg.Export.Dir
	if exportOut != "" {
		dir = exportOut
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	cmd.Printf("Exported %s\n", path)
	return nil
}

func lastDayOf(month time.Time) time.Time {
	return dateutil.MonthOf(month).AddDate(0, 1, -1)
}
