package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/report"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "Registros"
)

type ReportServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	scheduleService schedule.ScheduleService
	loc             *time.Location
	cutoff          attendance.Cutoff
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
	loc *time.Location,
	cutoff attendance.Cutoff,
) report.ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		scheduleService: scheduleService,
		loc:             loc,
		cutoff:          cutoff,
	}
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	month := req.MonthStart()
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, s.loc)

	days, err := s.attendanceRepo.FindRange(ctx, attendance.RangeFilter{
		EmployeeID: &emp.ID,
		From:       start,
		To:         start.AddDate(0, 1, 0),
	})
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	rows := make([]report.ReportRow, 0, len(days))
	local := make([]attendance.Day, 0, len(days))
	for _, d := range days {
		d = d.In(s.loc)
		local = append(local, d)
		rows = append(rows, report.NewReportRow(attendance.FormatRow(d), attendance.IsLate(d, s.cutoff)))
	}
	summary := attendance.AggregateMonth(local, s.cutoff)

	scheduled, err := s.scheduleService.ScheduledDays(ctx, emp.ID, start)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to count scheduled days: %w", err)
	}

	return report.MonthlyReport{
		Employee: report.ReportEmployee{
			ID:     emp.ID,
			Name:   emp.Name,
			Active: emp.Active,
		},
		Month:         req.Month,
		Rows:          rows,
		TotalHours:    summary.TotalHours,
		LateCount:     summary.LateCount,
		ScheduledDays: scheduled,
		Cutoff:        s.cutoff.String(),
	}, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	monthly, err := s.Monthly(ctx, req.MonthlyReportRequest)
	if err != nil {
		return report.ExportFile{}, err
	}

	switch req.Format {
	case report.FormatCSV:
		content, err := EncodeCSV(monthly.Rows)
		if err != nil {
			return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGeneration, err)
		}
		return report.ExportFile{
			Filename:    exportFilename(monthly, report.FormatCSV),
			ContentType: contentTypeCSV,
			Content:     content,
		}, nil
	case report.FormatXLSX:
		content, err := EncodeXLSX(monthly.Rows)
		if err != nil {
			return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGeneration, err)
		}
		return report.ExportFile{
			Filename:    exportFilename(monthly, report.FormatXLSX),
			ContentType: contentTypeXLSX,
			Content:     content,
		}, nil
	}
	return report.ExportFile{}, report.ErrUnsupportedFormat
}

// EncodeCSV writes the header and one line per row.
func EncodeCSV(rows []report.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(report.CSVHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(r.Fields()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeXLSX writes the same table as EncodeCSV into a single-sheet workbook.
func EncodeXLSX(rows []report.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	writeRow := func(line int, fields []string) error {
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(fields))
		for i, v := range fields {
			values[i] = v
		}
		return f.SetSheetRow(sheetName, cell, &values)
	}

	if err := writeRow(1, report.CSVHeader); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := writeRow(i+2, r.Fields()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportFilename(m report.MonthlyReport, format string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '"', '/', '\\':
			return -1
		}
		return r
	}, m.Employee.Name)
	return fmt.Sprintf("registros-%s-%s.%s", name, m.Month, format)
}
