package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/dashboard"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/transaction"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
)

type DashboardServiceImpl struct {
	transactionRepo transaction.TransactionRepository
	resolver        *permission.Resolver
}

func NewDashboardService(transactionRepository transaction.TransactionRepository, resolver *permission.Resolver) dashboard.DashboardService {
	return &DashboardServiceImpl{
		transactionRepo: transactionRepository,
		resolver:        resolver,
	}
}

// GetOverview implements dashboard.DashboardService. The full aggregate is
// assembled first and redacted as one record, so a role change never needs a
// second query shape.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context, businessID string, role user.Role, month string) (*dashboard.OverviewResponse, error) {
	from, to, period, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	summary, err := s.transactionRepo.SummarizePeriod(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize period: %w", err)
	}

	record := map[string]any{
		"total_revenue":     summary.TotalRevenue,
		"total_expenses":    summary.TotalExpenses,
		"net_profit":        summary.NetProfit,
		"profit_margin":     summary.ProfitMargin,
		"transaction_count": summary.TransactionCount,
	}

	return &dashboard.OverviewResponse{
		BusinessID: businessID,
		View:       s.resolver.DashboardView(role),
		Period:     period,
		Data:       s.resolver.FilterRecord(role, record),
	}, nil
}

// GetRecentActivity implements dashboard.DashboardService. The feed carries
// no amounts; it only shows that something happened.
func (s *DashboardServiceImpl) GetRecentActivity(ctx context.Context, businessID string, role user.Role, limit int) (*dashboard.ActivityResponse, error) {
	if !s.resolver.HasCapability(role, user.CapabilityActivityView) {
		return nil, dashboard.ErrActivityAccessDenied
	}

	recent, err := s.transactionRepo.ListRecent(ctx, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	items := make([]dashboard.ActivityItem, 0, len(recent))
	for _, t := range recent {
		items = append(items, dashboard.ActivityItem{
			TransactionID: t.ID,
			Type:          string(t.Type),
			Category:      t.Category,
			OccurredAt:    t.OccurredAt.UTC().Format(time.RFC3339),
		})
	}

	return &dashboard.ActivityResponse{
		BusinessID: businessID,
		Items:      items,
	}, nil
}

// monthRange parses "YYYY-MM" into a UTC half-open interval. Empty means the
// current month.
func monthRange(month string) (from, to time.Time, period string, err error) {
	if month == "" {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		from, err = time.Parse("2006-01", month)
		if err != nil {
			return time.Time{}, time.Time{}, "", dashboard.ErrInvalidMonth
		}
	}
	return from, from.AddDate(0, 1, 0), from.Format("2006-01"), nil
}
