package http

import (
	"net/http"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/dashboard"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Overview implements DashboardHandler. GET /dashboard?month=YYYY-MM
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Overview(r.Context(), dashboard.OverviewRequest{
		Month: r.URL.Query().Get("month"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
