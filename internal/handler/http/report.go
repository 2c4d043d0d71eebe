package http

import (
	"net/http"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/report"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlyReportRequest {
	return report.MonthlyReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
	}
}

// Monthly implements ReportHandler. GET /records?employee_id=...&month=YYYY-MM
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Monthly(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Export implements ReportHandler. GET /records/export?employee_id=...&month=YYYY-MM&format=csv|xlsx
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.Export(r.Context(), report.ExportRequest{
		MonthlyReportRequest: monthlyRequestFromQuery(r),
		Format:               r.URL.Query().Get("format"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Filename, file.ContentType, file.Content)
}
