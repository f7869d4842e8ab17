package transaction

import "context"

type TransactionService interface {
	Create(ctx context.Context, businessID, actorID string, req CreateTransactionRequest) (Transaction, error)
	Get(ctx context.Context, businessID, id string) (Transaction, error)
	Update(ctx context.Context, businessID, id string, req UpdateTransactionRequest) (Transaction, error)
	Delete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, filter ListFilter) ([]Transaction, int64, error)
}
