package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/transaction"
	"github.com/jackc/pgx/v5"
)

type TransactionServiceImpl struct {
	transaction.TransactionRepository
}

func NewTransactionService(transactionRepository transaction.TransactionRepository) transaction.TransactionService {
	return &TransactionServiceImpl{TransactionRepository: transactionRepository}
}

// Create implements transaction.TransactionService.
func (s *TransactionServiceImpl) Create(ctx context.Context, businessID, actorID string, req transaction.CreateTransactionRequest) (transaction.Transaction, error) {
	created, err := s.TransactionRepository.Create(ctx, transaction.Transaction{
		BusinessID: businessID,
		Type:       transaction.Type(req.Type),
		Amount:     req.Amount,
		Category:   req.Category,
		Note:       req.Note,
		OccurredAt: req.OccurredAtTime(),
		CreatedBy:  actorID,
	})
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// Get implements transaction.TransactionService. Records from other
// businesses read as not found so IDs cannot be probed across tenants.
func (s *TransactionServiceImpl) Get(ctx context.Context, businessID, id string) (transaction.Transaction, error) {
	found, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transaction.Transaction{}, transaction.ErrTransactionNotFound
		}
		return transaction.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	if found.BusinessID != businessID {
		return transaction.Transaction{}, transaction.ErrTransactionNotFound
	}
	return found, nil
}

// Update implements transaction.TransactionService.
func (s *TransactionServiceImpl) Update(ctx context.Context, businessID, id string, req transaction.UpdateTransactionRequest) (transaction.Transaction, error) {
	current, err := s.Get(ctx, businessID, id)
	if err != nil {
		return transaction.Transaction{}, err
	}

	if req.Amount != nil {
		current.Amount = *req.Amount
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.Note != nil {
		current.Note = req.Note
	}

	updated, err := s.TransactionRepository.Update(ctx, current)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	return updated, nil
}

// Delete implements transaction.TransactionService.
func (s *TransactionServiceImpl) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return err
	}

	if err := s.TransactionRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transaction.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// List implements transaction.TransactionService.
func (s *TransactionServiceImpl) List(ctx context.Context, businessID string, filter transaction.ListFilter) ([]transaction.Transaction, int64, error) {
	transactions, total, err := s.ListByBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}
