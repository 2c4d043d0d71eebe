package report

import "context"

// ReportService builds monthly attendance reports for one employee
type ReportService interface {
	// Monthly returns the formatted rows and totals of a month
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// Export renders the monthly rows as a downloadable file
	Export(ctx context.Context, req ExportRequest) (ExportFile, error)
}
