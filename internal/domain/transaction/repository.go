package transaction

import (
	"context"
	"time"
)

type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	Update(ctx context.Context, t Transaction) (Transaction, error)
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string, filter ListFilter) ([]Transaction, int64, error)
	SummarizePeriod(ctx context.Context, businessID string, from, to time.Time) (PeriodSummary, error)
	ListRecent(ctx context.Context, businessID string, limit int) ([]Transaction, error)
}
