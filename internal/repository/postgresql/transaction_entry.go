package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/transaction"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, business_id, type, amount, category, note, occurred_at, created_by, created_at, updated_at`

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

func scanTransaction(row pgx.Row) (transaction.Transaction, error) {
	var t transaction.Transaction
	err := row.Scan(
		&t.ID,
		&t.BusinessID,
		&t.Type,
		&t.Amount,
		&t.Category,
		&t.Note,
		&t.OccurredAt,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return transaction.Transaction{}, err
	}
	return t, nil
}

// Create implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (business_id, type, amount, category, note, occurred_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + transactionColumns

	return scanTransaction(q.QueryRow(ctx, query,
		t.BusinessID, t.Type, t.Amount, t.Category, t.Note, t.OccurredAt, t.CreatedBy,
	))
}

// GetByID implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	return scanTransaction(q.QueryRow(ctx, query, id))
}

// Update implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Update(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE transactions
		SET type = $1, amount = $2, category = $3, note = $4, occurred_at = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + transactionColumns

	return scanTransaction(q.QueryRow(ctx, query,
		t.Type, t.Amount, t.Category, t.Note, t.OccurredAt, t.ID,
	))
}

// Delete implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByBusiness implements transaction.TransactionRepository with optional
// filters and keyset-free offset pagination.
func (r *transactionRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, filter transaction.ListFilter) ([]transaction.Transaction, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE business_id = $1`
	args := []interface{}{businessID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND occurred_at < $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(
		`SELECT %s FROM transactions %s ORDER BY occurred_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var transactions []transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	return transactions, total, rows.Err()
}

// SummarizePeriod implements transaction.TransactionRepository. The margin is
// computed here so every caller sees the same rounding.
func (r *transactionRepositoryImpl) SummarizePeriod(ctx context.Context, businessID string, from, to time.Time) (transaction.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0),
			COUNT(*)
		FROM transactions
		WHERE business_id = $1 AND occurred_at >= $2 AND occurred_at < $3
	`

	var summary transaction.PeriodSummary
	err := q.QueryRow(ctx, query, businessID, from, to).Scan(
		&summary.TotalRevenue,
		&summary.TotalExpenses,
		&summary.TransactionCount,
	)
	if err != nil {
		return transaction.PeriodSummary{}, err
	}

	summary.NetProfit = summary.TotalRevenue - summary.TotalExpenses
	if summary.TotalRevenue > 0 {
		summary.ProfitMargin = float64(summary.NetProfit) / float64(summary.TotalRevenue) * 100
	}
	return summary, nil
}

// ListRecent implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) ListRecent(ctx context.Context, businessID string, limit int) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 10
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE business_id = $1 ORDER BY occurred_at DESC, id DESC LIMIT $2`

	rows, err := q.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
