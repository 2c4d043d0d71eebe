package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	resp, err := h.attendanceService.Today(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Record implements AttendanceHandler. The action comes from the path,
// e.g. POST /attendance/break-start.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	action := attendance.Action(chi.URLParam(r, "action"))
	resp, err := h.attendanceService.Record(r.Context(), p, action)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !resp.Applied {
		response.SuccessWithMessage(w, "Action already recorded today", resp)
		return
	}
	response.Created(w, "Action recorded", resp)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	limit, valid := getIntQueryParam(r, "limit")
	if !valid {
		response.BadRequest(w, "limit must be a number", nil)
		return
	}

	resp, err := h.attendanceService.History(r.Context(), p, attendance.HistoryRequest{Limit: limit})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
