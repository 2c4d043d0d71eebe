package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/sse"
	"github.com/pontoseguro/ponto-backend-go/internal/repository/postgresql"
)

// EventPublisher is the part of the SSE hub the service needs.
type EventPublisher interface {
	Publish(topic string, event sse.Event)
}

type Options struct {
	Location *time.Location
	Cutoff   attendance.Cutoff
	Now      func() time.Time
}

type AttendanceServiceImpl struct {
	tx postgresql.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	events EventPublisher
	loc    *time.Location
	cutoff attendance.Cutoff
	now    func() time.Time
}

func NewAttendanceService(
	tx postgresql.Transactor,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	events EventPublisher,
	opts Options,
) attendance.AttendanceService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Cutoff == (attendance.Cutoff{}) {
		opts.Cutoff = attendance.DefaultCutoff
	}
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		events:               events,
		loc:                  opts.Location,
		cutoff:               opts.Cutoff,
		now:                  opts.Now,
	}
}

// clock returns the current instant at the store's microsecond precision and its local date.
func (a *AttendanceServiceImpl) clock() (time.Time, time.Time) {
	now := a.now().In(a.loc).Truncate(time.Microsecond)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
	return now, date
}

func (a *AttendanceServiceImpl) activeEmployee(ctx context.Context, principal auth.Principal) (employee.Employee, error) {
	if !principal.IsEmployee() {
		return employee.Employee{}, auth.ErrForbidden
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, principal.UserID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.Active {
		return employee.Employee{}, auth.ErrAccountInactive
	}
	return emp, nil
}

func (a *AttendanceServiceImpl) dayResponse(d attendance.Day) attendance.DayResponse {
	return attendance.NewDayResponse(d.In(a.loc), a.cutoff)
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, principal auth.Principal) (attendance.TodayResponse, error) {
	emp, err := a.activeEmployee(ctx, principal)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	_, date := a.clock()

	day, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date, false)
	if err != nil && !errors.Is(err, attendance.ErrDayNotFound) {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	current := attendance.Day{EmployeeID: emp.ID, Date: date}
	if day != nil {
		current = *day
	}

	return attendance.TodayResponse{
		Day:              a.dayResponse(current),
		AvailableActions: attendance.AvailableActions(day),
	}, nil
}

// Record implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Record(ctx context.Context, principal auth.Principal, action attendance.Action) (attendance.ClockResponse, error) {
	action, err := attendance.ParseAction(string(action))
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, principal)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	now, date := a.clock()

	var (
		result  attendance.Day
		applied bool
	)
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, emp.ID, date, true)
		if err != nil {
			if !errors.Is(err, attendance.ErrDayNotFound) {
				return fmt.Errorf("failed to lock attendance day: %w", err)
			}
			existing = nil
		}

		switch err := attendance.CanApply(existing, action); {
		case errors.Is(err, attendance.ErrActionAlreadyRecorded):
			result = *existing
			return nil
		case err != nil:
			return err
		}

		result, err = a.AttendanceRepository.UpsertField(txCtx, emp.ID, date, action, now)
		if err != nil {
			return err
		}

		// A concurrent first action of the day may have won the insert.
		recorded := result.Get(action)
		applied = recorded != nil && recorded.Equal(now)
		return nil
	})
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	if applied {
		slog.Info("clock action recorded", "employee_id", emp.ID, "action", action)
		if a.events != nil {
			a.events.Publish(sse.TopicAdmin, sse.Event{
				Name: "clock",
				Data: attendance.ClockEvent{
					EmployeeID:   emp.ID,
					EmployeeName: emp.Name,
					Action:       action,
					Timestamp:    now,
					State:        attendance.StateOf(&result),
				},
			})
		}
	}

	return attendance.ClockResponse{
		Day:              a.dayResponse(result),
		Action:           action,
		Applied:          applied,
		AvailableActions: attendance.AvailableActions(&result),
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, principal auth.Principal, req attendance.HistoryRequest) ([]attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := a.activeEmployee(ctx, principal)
	if err != nil {
		return nil, err
	}

	days, err := a.AttendanceRepository.Recent(ctx, emp.ID, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	resp := make([]attendance.DayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, a.dayResponse(d))
	}
	return resp, nil
}
