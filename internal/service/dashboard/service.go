package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/dashboard"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
)

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	cutoff         attendance.Cutoff
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	cutoff attendance.Cutoff,
) dashboard.DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		cutoff:         cutoff,
	}
}

// perEmployee divides value by count, rounded to 2 decimals. Zero employees give 0.
func perEmployee(value decimal.Decimal, count int) float64 {
	if count == 0 {
		return 0
	}
	return value.Div(decimal.NewFromInt(int64(count))).Round(2).InexactFloat64()
}

// Overview runs the employee counts and the month fetch in parallel.
func (s *DashboardServiceImpl) Overview(ctx context.Context, req dashboard.OverviewRequest) (dashboard.OverviewResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.OverviewResponse{}, err
	}

	month := req.MonthStart()
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, s.loc)

	role := string(employee.RoleEmployee)
	active := true

	var (
		total, activeCount int
		days               []attendance.Day
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.Count(gCtx, employee.EmployeeFilter{Role: &role})
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		total = n
		return nil
	})

	g.Go(func() error {
		n, err := s.employeeRepo.Count(gCtx, employee.EmployeeFilter{Role: &role, Active: &active})
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		activeCount = n
		return nil
	})

	g.Go(func() error {
		found, err := s.attendanceRepo.FindRange(gCtx, attendance.RangeFilter{
			From: start,
			To:   start.AddDate(0, 1, 0),
		})
		if err != nil {
			return fmt.Errorf("failed to get attendance records: %w", err)
		}
		days = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}

	local := make([]attendance.Day, len(days))
	for i, d := range days {
		local[i] = d.In(s.loc)
	}
	summary := attendance.AggregateMonth(local, s.cutoff)
	hours := attendance.HoursFromMinutes(summary.TotalMinutes)

	return dashboard.OverviewResponse{
		Month:                   req.Month,
		TotalEmployees:          total,
		ActiveEmployees:         activeCount,
		TotalHours:              summary.TotalHours,
		LateRecords:             summary.LateCount,
		AverageHoursPerEmployee: perEmployee(hours, activeCount),
		AverageLatePerEmployee:  perEmployee(decimal.NewFromInt(int64(summary.LateCount)), activeCount),
	}, nil
}
