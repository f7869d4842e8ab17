package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/dashboard"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/transaction"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactionRepo struct {
	summary     transaction.PeriodSummary
	recent      []transaction.Transaction
	gotFrom     time.Time
	gotTo       time.Time
	gotBusiness string
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	return t, nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	return transaction.Transaction{}, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	return t, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeTransactionRepo) ListByBusiness(ctx context.Context, businessID string, filter transaction.ListFilter) ([]transaction.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepo) SummarizePeriod(ctx context.Context, businessID string, from, to time.Time) (transaction.PeriodSummary, error) {
	f.gotBusiness = businessID
	f.gotFrom = from
	f.gotTo = to
	return f.summary, nil
}

func (f *fakeTransactionRepo) ListRecent(ctx context.Context, businessID string, limit int) ([]transaction.Transaction, error) {
	if limit < len(f.recent) {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func newDashboardService(repo *fakeTransactionRepo) dashboard.DashboardService {
	return NewDashboardService(repo, permission.NewResolver())
}

func TestGetOverviewOwnerSeesEveryField(t *testing.T) {
	repo := &fakeTransactionRepo{summary: transaction.PeriodSummary{
		TotalRevenue:     500_000,
		TotalExpenses:    320_000,
		NetProfit:        180_000,
		ProfitMargin:     36.0,
		TransactionCount: 42,
	}}
	svc := newDashboardService(repo)

	resp, err := svc.GetOverview(context.Background(), "biz-1", user.RoleOwner, "2025-02")
	require.NoError(t, err)

	assert.Equal(t, "owner_dashboard", resp.View)
	assert.Equal(t, "2025-02", resp.Period)
	assert.Equal(t, int64(500_000), resp.Data["total_revenue"])
	assert.Equal(t, int64(320_000), resp.Data["total_expenses"])
	assert.Equal(t, int64(180_000), resp.Data["net_profit"])
	assert.Equal(t, 36.0, resp.Data["profit_margin"])
	assert.Equal(t, int64(42), resp.Data["transaction_count"])
}

func TestGetOverviewManagerSeesCountOnly(t *testing.T) {
	repo := &fakeTransactionRepo{summary: transaction.PeriodSummary{
		TotalRevenue:     500_000,
		TransactionCount: 42,
	}}
	svc := newDashboardService(repo)

	resp, err := svc.GetOverview(context.Background(), "biz-1", user.RoleManager, "2025-02")
	require.NoError(t, err)

	assert.Equal(t, "manager_dashboard", resp.View)
	assert.Equal(t, map[string]any{"transaction_count": int64(42)}, resp.Data)
}

func TestGetOverviewEmployeeSeesNothing(t *testing.T) {
	repo := &fakeTransactionRepo{summary: transaction.PeriodSummary{TransactionCount: 42}}
	svc := newDashboardService(repo)

	resp, err := svc.GetOverview(context.Background(), "biz-1", user.RoleEmployee, "2025-02")
	require.NoError(t, err)

	assert.Equal(t, "employee_dashboard", resp.View)
	assert.Empty(t, resp.Data)
}

func TestGetOverviewMonthIsHalfOpenInterval(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := newDashboardService(repo)

	_, err := svc.GetOverview(context.Background(), "biz-1", user.RoleOwner, "2025-02")
	require.NoError(t, err)

	assert.Equal(t, "biz-1", repo.gotBusiness)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), repo.gotTo)
}

func TestGetOverviewRejectsMalformedMonth(t *testing.T) {
	svc := newDashboardService(&fakeTransactionRepo{})

	_, err := svc.GetOverview(context.Background(), "biz-1", user.RoleOwner, "Feb-2025")
	assert.ErrorIs(t, err, dashboard.ErrInvalidMonth)
}

func TestGetRecentActivityDeniedForEmployee(t *testing.T) {
	svc := newDashboardService(&fakeTransactionRepo{})

	_, err := svc.GetRecentActivity(context.Background(), "biz-1", user.RoleEmployee, 10)
	assert.ErrorIs(t, err, dashboard.ErrActivityAccessDenied)
}

func TestGetRecentActivityCarriesNoAmounts(t *testing.T) {
	occurred := time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)
	repo := &fakeTransactionRepo{recent: []transaction.Transaction{
		{ID: "txn-1", Type: transaction.TypeIncome, Category: "sales", Amount: 99_000, OccurredAt: occurred},
	}}
	svc := newDashboardService(repo)

	resp, err := svc.GetRecentActivity(context.Background(), "biz-1", user.RoleManager, 10)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.Equal(t, "txn-1", item.TransactionID)
	assert.Equal(t, "income", item.Type)
	assert.Equal(t, "sales", item.Category)
	assert.Equal(t, "2025-02-14T09:30:00Z", item.OccurredAt)
}
