package report

import (
	"strings"
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var FormatValues = []string{FormatCSV, FormatXLSX}

// CSVHeader is the first line of every CSV export.
var CSVHeader = []string{"Date", "CheckIn", "BreakStart", "BreakEnd", "CheckOut", "HoursWorked"}

type MonthlyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM

	month time.Time
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

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
func (r MonthlyReportRequest) MonthStart() time.Time {
	return r.month
}

type ExportRequest struct {
	MonthlyReportRequest
	Format string `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.MonthlyReportRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	r.Format = strings.ToLower(r.Format)
	if r.Format == "" {
		r.Format = FormatCSV
	}
	if !validator.IsInSlice(r.Format, FormatValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: " + strings.Join(FormatValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportRow struct {
	Date        string `json:"date"`
	CheckIn     string `json:"check_in"`
	BreakStart  string `json:"break_start"`
	BreakEnd    string `json:"break_end"`
	CheckOut    string `json:"check_out"`
	HoursWorked string `json:"hours_worked"`
	IsLate      bool   `json:"is_late"`
}

// NewReportRow maps a formatted attendance row to its JSON form.
func NewReportRow(fields []string, late bool) ReportRow {
	return ReportRow{
		Date:        fields[0],
		CheckIn:     fields[1],
		BreakStart:  fields[2],
		BreakEnd:    fields[3],
		CheckOut:    fields[4],
		HoursWorked: fields[5],
		IsLate:      late,
	}
}

// Fields returns the row in CSV column order.
func (r ReportRow) Fields() []string {
	return []string{r.Date, r.CheckIn, r.BreakStart, r.BreakEnd, r.CheckOut, r.HoursWorked}
}

type ReportEmployee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type MonthlyReport struct {
	Employee      ReportEmployee `json:"employee"`
	Month         string         `json:"month"`
	Rows          []ReportRow    `json:"rows"`
	TotalHours    float64        `json:"total_hours"`
	LateCount     int            `json:"late_count"`
	ScheduledDays int            `json:"scheduled_days"`
	Cutoff        string         `json:"late_cutoff"`
}

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
