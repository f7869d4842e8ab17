package postgresql

import (
	"context"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/payroll"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const payrollRunColumns = `id, business_id, period_start, period_end, status, total_amount, member_count, created_by, created_at, updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayrollRun(row pgx.Row) (payroll.Run, error) {
	var run payroll.Run
	err := row.Scan(
		&run.ID,
		&run.BusinessID,
		&run.PeriodStart,
		&run.PeriodEnd,
		&run.Status,
		&run.TotalAmount,
		&run.MemberCount,
		&run.CreatedBy,
		&run.CreatedAt,
		&run.UpdatedAt,
	)
	if err != nil {
		return payroll.Run{}, err
	}
	return run, nil
}

// CreateRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (business_id, period_start, period_end, status, total_amount, member_count, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + payrollRunColumns

	return scanPayrollRun(q.QueryRow(ctx, query,
		run.BusinessID, run.PeriodStart, run.PeriodEnd, run.Status,
		run.TotalAmount, run.MemberCount, run.CreatedBy,
	))
}

// GetRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRun(ctx context.Context, id string) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs WHERE id = $1`

	return scanPayrollRun(q.QueryRow(ctx, query, id))
}

// ListRuns implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRuns(ctx context.Context, businessID string) ([]payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs WHERE business_id = $1 ORDER BY period_start DESC`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FinalizeRun implements payroll.PayrollRepository. Only draft runs flip;
// finalizing twice surfaces as no rows.
func (r *payrollRepositoryImpl) FinalizeRun(ctx context.Context, id string) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = 'finalized', updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
		RETURNING ` + payrollRunColumns

	return scanPayrollRun(q.QueryRow(ctx, query, id))
}

// HasOverlappingRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) HasOverlappingRun(ctx context.Context, businessID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payroll_runs
			WHERE business_id = $1 AND period_start <= $3 AND period_end >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, businessID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
