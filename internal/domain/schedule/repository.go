package schedule

import "context"

type ScheduleRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	Update(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	Delete(ctx context.Context, id string) error
}
