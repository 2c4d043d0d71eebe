package attendance

import (
	"context"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
)

type AttendanceService interface {
	// Today returns the caller's day so far and the actions still available.
	Today(ctx context.Context, principal auth.Principal) (TodayResponse, error)

	// Record applies a clock action to the caller's current day.
	Record(ctx context.Context, principal auth.Principal, action Action) (ClockResponse, error)

	// History lists the caller's most recent days, newest first.
	History(ctx context.Context, principal auth.Principal, req HistoryRequest) ([]DayResponse, error)
}
