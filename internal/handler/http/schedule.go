package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	ListWorkSchedules(w http.ResponseWriter, r *http.Request)
	CreateWorkSchedule(w http.ResponseWriter, r *http.Request)
	UpdateWorkSchedule(w http.ResponseWriter, r *http.Request)
	DeleteWorkSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// ListWorkSchedules implements ScheduleHandler. GET /employees/{id}/schedules
func (h *scheduleHandlerImpl) ListWorkSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// CreateWorkSchedule implements ScheduleHandler. POST /employees/{id}/schedules
func (h *scheduleHandlerImpl) CreateWorkSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWorkScheduleRequest
	if !decodeJSON(w, r, &req, "CreateWorkSchedule") {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	ws, err := h.scheduleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work schedule created successfully", ws)
}

// UpdateWorkSchedule implements ScheduleHandler. PUT /schedules/{id}
func (h *scheduleHandlerImpl) UpdateWorkSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateWorkScheduleRequest
	if !decodeJSON(w, r, &req, "UpdateWorkSchedule") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	ws, err := h.scheduleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work schedule updated successfully", ws)
}

// DeleteWorkSchedule implements ScheduleHandler. DELETE /schedules/{id}
func (h *scheduleHandlerImpl) DeleteWorkSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work schedule deleted successfully", nil)
}
