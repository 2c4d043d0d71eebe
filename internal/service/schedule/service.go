package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, employeeRepo employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

var rruleWeekdays = map[schedule.Weekday]rrule.Weekday{
	schedule.Monday:    rrule.MO,
	schedule.Tuesday:   rrule.TU,
	schedule.Wednesday: rrule.WE,
	schedule.Thursday:  rrule.TH,
	schedule.Friday:    rrule.FR,
	schedule.Saturday:  rrule.SA,
	schedule.Sunday:    rrule.SU,
}

// CountScheduledDays counts the calendar days of month falling on one of weekdays.
func CountScheduledDays(weekdays []schedule.Weekday, month time.Time) (int, error) {
	seen := make(map[schedule.Weekday]bool)
	var byWeekday []rrule.Weekday
	for _, w := range weekdays {
		rw, ok := rruleWeekdays[w]
		if !ok || seen[w] {
			continue
		}
		seen[w] = true
		byWeekday = append(byWeekday, rw)
	}
	// An empty BYDAY would match every day.
	if len(byWeekday) == 0 {
		return 0, nil
	}

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	rr, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   start,
		Until:     end,
		Byweekday: byWeekday,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to build recurrence: %w", err)
	}

	set := rrule.Set{}
	set.RRule(rr)
	return len(set.Between(start, end, true)), nil
}

// ListByEmployee implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.WorkScheduleResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, employee.ErrEmployeeNotFound
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	resp := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		resp = append(resp, schedule.NewWorkScheduleResponse(ws))
	}
	return resp, nil
}

// Create implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.WorkSchedule{
		EmployeeID: req.EmployeeID,
		Weekday:    schedule.Weekday(req.Weekday),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return schedule.NewWorkScheduleResponse(created), nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	existing.Weekday = schedule.Weekday(req.Weekday)
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.BreakStart = req.BreakStart
	existing.BreakEnd = req.BreakEnd

	updated, err := s.scheduleRepo.Update(ctx, existing)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return schedule.NewWorkScheduleResponse(updated), nil
}

// Delete implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return schedule.ErrScheduleNotFound
	}
	return s.scheduleRepo.Delete(ctx, id)
}

// ScheduledDays implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ScheduledDays(ctx context.Context, employeeID string, month time.Time) (int, error) {
	schedules, err := s.scheduleRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to list work schedules: %w", err)
	}

	weekdays := make([]schedule.Weekday, 0, len(schedules))
	for _, ws := range schedules {
		weekdays = append(weekdays, ws.Weekday)
	}
	return CountScheduledDays(weekdays, month)
}
