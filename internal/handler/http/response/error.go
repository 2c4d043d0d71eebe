package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/report"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unknown errors are
// logged and answered with a generic 500.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid CPF or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrWrongRole):
		Forbidden(w, "Account does not have the requested role")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient permissions")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, employee.ErrDuplicateRecord):
		Conflict(w, "More than one employee matches this CPF")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)

	// Attendance
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Invalid clock action", nil)
	case errors.Is(err, attendance.ErrInvalidTransition):
		Conflict(w, "Clock action not allowed in the current state of the day")
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "Attendance record not found")

	// Schedule
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrWeekdayTaken):
		Conflict(w, "Employee already has a schedule on this weekday")

	// Report
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Export format must be csv or xlsx", nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
