package dashboard

import (
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

type OverviewRequest struct {
	Month string `json:"month"` // YYYY-MM, defaults to the current month

	month time.Time
}

func (r *OverviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month == "" {
		r.Month = time.Now().Format("2006-01")
	}
	month, ok := validator.IsValidMonth(r.Month)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	r.month = month

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthStart is the first day of the requested month. Valid after Validate.
func (r OverviewRequest) MonthStart() time.Time {
	return r.month
}

type OverviewResponse struct {
	Month                   string  `json:"month"`
	TotalEmployees          int     `json:"total_employees"`
	ActiveEmployees         int     `json:"active_employees"`
	TotalHours              float64 `json:"total_hours"`
	LateRecords             int     `json:"late_records"`
	AverageHoursPerEmployee float64 `json:"average_hours_per_employee"`
	AverageLatePerEmployee  float64 `json:"average_late_per_employee"`
}
