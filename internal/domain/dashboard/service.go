package dashboard

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

type DashboardService interface {
	// GetOverview returns the aggregate record for the month, redacted for
	// the caller's role. month is "YYYY-MM"; empty means the current month.
	GetOverview(ctx context.Context, businessID string, role user.Role, month string) (*OverviewResponse, error)
	// GetRecentActivity returns the latest transactions, visible only to
	// roles holding activity.view.
	GetRecentActivity(ctx context.Context, businessID string, role user.Role, limit int) (*ActivityResponse, error)
}
