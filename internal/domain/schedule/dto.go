package schedule

import (
	"strings"
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

// Shift holds the fields shared by create and update requests.
type Shift struct {
	Weekday    string  `json:"weekday"`
	StartTime  string  `json:"start_time"`            // HH:MM
	EndTime    string  `json:"end_time"`              // HH:MM
	BreakStart *string `json:"break_start,omitempty"` // HH:MM, optional
	BreakEnd   *string `json:"break_end,omitempty"`   // HH:MM, optional
}

func (s *Shift) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	s.Weekday = strings.ToLower(strings.TrimSpace(s.Weekday))
	if !validator.IsInSlice(s.Weekday, WeekdayValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekday",
			Message: "weekday must be one of: " + strings.Join(WeekdayValues, ", "),
		})
	}

	start, validStart := validator.IsValidClockTime(s.StartTime)
	if !validStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time in HH:MM format",
		})
	}
	end, validEnd := validator.IsValidClockTime(s.EndTime)
	if !validEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time in HH:MM format",
		})
	}
	if validStart && validEnd && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if s.BreakStart != nil && *s.BreakStart == "" {
		s.BreakStart = nil
	}
	if s.BreakEnd != nil && *s.BreakEnd == "" {
		s.BreakEnd = nil
	}

	if (s.BreakStart == nil) != (s.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_times",
			Message: "both break_start and break_end must be provided or neither",
		})
	} else if s.BreakStart != nil {
		breakStart, okStart := validator.IsValidClockTime(*s.BreakStart)
		breakEnd, okEnd := validator.IsValidClockTime(*s.BreakEnd)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break_start must be a valid time in HH:MM format",
			})
		}
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be a valid time in HH:MM format",
			})
		}
		if okStart && okEnd {
			if !breakStart.Before(breakEnd) {
				errs = append(errs, validator.ValidationError{
					Field:   "break_end",
					Message: "break_end must be after break_start",
				})
			}
			if validStart && validEnd && (breakStart.Before(start) || breakEnd.After(end)) {
				errs = append(errs, validator.ValidationError{
					Field:   "break_times",
					Message: "break must be within start_time and end_time",
				})
			}
		}
	}

	return errs
}

type CreateWorkScheduleRequest struct {
	EmployeeID string `json:"-"`
	Shift
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	errs = append(errs, r.Shift.validate()...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkScheduleRequest struct {
	ID string `json:"-"`
	Shift
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	errs = append(errs, r.Shift.validate()...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkScheduleResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Weekday    string  `json:"weekday"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func NewWorkScheduleResponse(ws WorkSchedule) WorkScheduleResponse {
	return WorkScheduleResponse{
		ID:         ws.ID,
		EmployeeID: ws.EmployeeID,
		Weekday:    string(ws.Weekday),
		StartTime:  ws.StartTime,
		EndTime:    ws.EndTime,
		BreakStart: ws.BreakStart,
		BreakEnd:   ws.BreakEnd,
		CreatedAt:  ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  ws.UpdatedAt.Format(time.RFC3339),
	}
}
