package attendance

import (
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type HistoryRequest struct {
	Limit int `json:"limit"`
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if r.Limit == 0 {
		r.Limit = DefaultHistoryLimit
	}
	if r.Limit > MaxHistoryLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayResponse struct {
	ID            string     `json:"id,omitempty"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  *string    `json:"employee_name,omitempty"`
	Date          string     `json:"date"`
	CheckIn       *time.Time `json:"check_in"`
	BreakStart    *time.Time `json:"break_start"`
	BreakEnd      *time.Time `json:"break_end"`
	CheckOut      *time.Time `json:"check_out"`
	WorkedMinutes int        `json:"worked_minutes"`
	WorkedHours   string     `json:"worked_hours"`
	IsLate        bool       `json:"is_late"`
	State         State      `json:"state"`
}

func NewDayResponse(d Day, cutoff Cutoff) DayResponse {
	minutes := WorkedMinutes(d)
	return DayResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName,
		Date:          d.Date.Format("2006-01-02"),
		CheckIn:       d.CheckIn,
		BreakStart:    d.BreakStart,
		BreakEnd:      d.BreakEnd,
		CheckOut:      d.CheckOut,
		WorkedMinutes: minutes,
		WorkedHours:   FormatHours(minutes),
		IsLate:        IsLate(d, cutoff),
		State:         StateOf(&d),
	}
}

type TodayResponse struct {
	Day              DayResponse `json:"day"`
	AvailableActions []Action    `json:"available_actions"`
}

type ClockResponse struct {
	Day              DayResponse `json:"day"`
	Action           Action      `json:"action"`
	Applied          bool        `json:"applied"`
	AvailableActions []Action    `json:"available_actions"`
}

// ClockEvent is published to admins when an action is applied.
type ClockEvent struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Action       Action    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
	State        State     `json:"state"`
}
