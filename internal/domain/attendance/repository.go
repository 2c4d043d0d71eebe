package attendance

import (
	"context"
	"time"
)

type RangeFilter struct {
	EmployeeID *string   // nil means every employee
	From       time.Time // inclusive date
	To         time.Time // exclusive date
}

type AttendanceRepository interface {
	// GetByEmployeeAndDate returns ErrDayNotFound when no row exists.
	// forUpdate locks the row until the surrounding transaction ends.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*Day, error)

	// UpsertField creates the day if absent, otherwise sets the action's
	// column only when it is still null.
	UpsertField(ctx context.Context, employeeID string, date time.Time, action Action, ts time.Time) (Day, error)

	FindRange(ctx context.Context, filter RangeFilter) ([]Day, error)
	Recent(ctx context.Context, employeeID string, limit int) ([]Day, error)
}
