package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkScheduleResponse, error)
	Create(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	Update(ctx context.Context, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	// ScheduledDays counts the days of month whose weekday has a schedule.
	ScheduledDays(ctx context.Context, employeeID string, month time.Time) (int, error)
}
