package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Overview returns employee counts and the attendance totals of a month
	Overview(ctx context.Context, req OverviewRequest) (OverviewResponse, error)
}
