package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/filter"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/report"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

var (
	ErrExportNoSchedule  = errors.New("no schedule exists for the requested month")
	ErrExportNoEmployees = errors.New("no employees match the active filters")
)

// ExportService renders a month schedule or a performance report into a
// downloadable document. Output is returned as a buffer plus a suggested
// filename; writing it somewhere is the caller's business.
type ExportService interface {
	ExportScheduleXLSX(ctx context.Context, month time.Time, filters filter.Set) (*bytes.Buffer, string, error)
	ExportScheduleCSV(ctx context.Context, month time.Time, filters filter.Set) (*bytes.Buffer, string, error)
	ExportReportPDF(ctx context.Context, req report.PerformanceReportRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	source  report.MonthSource
	reports report.ReportService
	log     *zap.Logger
}

func NewExportService(source report.MonthSource, reports report.ReportService, log *zap.Logger) ExportService {
	return &exportService{source: source, reports: reports, log: log}
}

func (s *exportService) monthGrid(ctx context.Context, month time.Time, filters filter.Set) ([]schedule.Entry, []time.Time, error) {
	entries, err := s.source.MonthEntries(ctx, month)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, schedule.ErrMonthBlocked) {
			return nil, nil, ErrExportNoSchedule
		}
		return nil, nil, err
	}

	if len(filters) > 0 {
		filtered := make([]schedule.Entry, 0, len(entries))
		for _, entry := range entries {
			if filters.Matches(entry.Employee) {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}
	if len(entries) == 0 {
		return nil, nil, ErrExportNoEmployees
	}
	return entries, dateutil.MonthDays(month), nil
}

// cellText renders one day the way the grid shows it: the shift list when
// present, "Absent" otherwise. Days without a record come out empty.
func cellText(rec schedule.DayRecord, ok bool) string {
	if !ok {
		return ""
	}
	if rec.Attendance != schedule.AttendancePresent {
		return "Absent"
	}
	text := ""
	for i, kind := range rec.Shifts {
		if i > 0 {
			text += " / "
		}
		text += string(kind)
	}
	return text
}

func (s *exportService) ExportScheduleXLSX(ctx context.Context, month time.Time, filters filter.Set) (*bytes.Buffer, string, error) {
	entries, days, err := s.monthGrid(ctx, month, filters)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := month.Format("January 2006")
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "C", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Department", "Designation", "Name"}
	for _, day := range days {
		headers = append(headers, day.Format("Mon 2"))
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, entry := range entries {
		values := []string{entry.Employee.Department, entry.Employee.Designation, entry.Employee.FullName}
		for _, day := range days {
			rec, ok := entry.Days[dateutil.DateKey(day)]
			values = append(values, cellText(rec, ok))
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate xlsx: %w", err)
	}
	filename := fmt.Sprintf("schedule_%s.xlsx", month.Format("2006-01"))
	s.log.Info("schedule exported", zap.String("format", "xlsx"), zap.String("filename", filename))
	return buf, filename, nil
}

func (s *exportService) ExportScheduleCSV(ctx context.Context, month time.Time, filters filter.Set) (*bytes.Buffer, string, error) {
	entries, days, err := s.monthGrid(ctx, month, filters)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"department", "designation", "name", "date", "attendance", "shifts"}); err != nil {
		return nil, "", err
	}
	for _, entry := range entries {
		for _, day := range days {
			key := dateutil.DateKey(day)
			rec, ok := entry.Days[key]
			if !ok {
				continue
			}
			shifts := ""
			for i, kind := range rec.Shifts {
				if i > 0 {
					shifts += ";"
				}
				shifts += string(kind)
			}
			record := []string{
				entry.Employee.Department,
				entry.Employee.Designation,
				entry.Employee.FullName,
				key,
				string(rec.Attendance),
				shifts,
			}
			if err := w.Write(record); err != nil {
				return nil, "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("schedule_%s.csv", month.Format("2006-01"))
	s.log.Info("schedule exported", zap.String("format", "csv"), zap.String("filename", filename))
	return buf, filename, nil
}

func (s *exportService) ExportReportPDF(ctx context.Context, req report.PerformanceReportRequest) (*bytes.Buffer, string, error) {
	rep, err := s.reports.GeneratePerformanceReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Staff Performance Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 8, fmt.Sprintf("Period: %s to %s", rep.PeriodStart, rep.PeriodEnd))
	pdf.Ln(10)

	widths := []float64{55, 40, 40, 25, 25, 25}
	headers := []string{"Name", "Department", "Designation", "Present", "Absent", "Present %"}
	pdf.SetFont("Arial", "B", 11)
	for i, header := range headers {
		pdf.Cell(widths[i], 8, header)
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, emp := range rep.Employees {
		cells := []string{
			emp.FullName,
			emp.Department,
			emp.Designation,
			fmt.Sprintf("%d", emp.TotalPresent),
			fmt.Sprintf("%d", emp.TotalAbsent),
			fmt.Sprintf("%d%%", emp.PresentPercent),
		}
		for i, cell := range cells {
			pdf.Cell(widths[i], 7, cell)
		}
		pdf.Ln(7)
	}

	pdf.SetFont("Arial", "B", 10)
	totals := []string{
		"Total", "", "",
		fmt.Sprintf("%d", rep.EmployeeTotal.TotalPresent),
		fmt.Sprintf("%d", rep.EmployeeTotal.TotalAbsent),
		fmt.Sprintf("%d%%", rep.EmployeeTotal.PresentPercent),
	}
	for i, cell := range totals {
		pdf.Cell(widths[i], 8, cell)
	}
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generated at: %s", rep.GeneratedAt))

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, "", fmt.Errorf("failed to generate pdf: %w", err)
	}
	filename := fmt.Sprintf("performance_%s_%s.pdf", rep.PeriodStart, rep.PeriodEnd)
	s.log.Info("report exported", zap.String("format", "pdf"), zap.String("filename", filename))
	return buf, filename, nil
}
