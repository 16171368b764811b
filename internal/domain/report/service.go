package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate Staff Performance Report
	GeneratePerformanceReport(ctx context.Context, req PerformanceReportRequest) (PerformanceReport, error)
}
