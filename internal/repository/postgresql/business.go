package postgresql

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const businessColumns = `id, name, category, currency, owner_id, created_at, updated_at`

type businessRepositoryImpl struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepositoryImpl{db: db}
}

func scanBusiness(row pgx.Row) (business.Business, error) {
	var b business.Business
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Category,
		&b.Currency,
		&b.OwnerID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return business.Business{}, err
	}
	return b, nil
}

// Create implements business.BusinessRepository.
func (r *businessRepositoryImpl) Create(ctx context.Context, b business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO businesses (name, category, currency, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + businessColumns

	return scanBusiness(q.QueryRow(ctx, query, b.Name, b.Category, b.Currency, b.OwnerID))
}

// GetByID implements business.BusinessRepository.
func (r *businessRepositoryImpl) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	return scanBusiness(q.QueryRow(ctx, query, id))
}

// Update implements business.BusinessRepository.
func (r *businessRepositoryImpl) Update(ctx context.Context, b business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE businesses
		SET name = $1, category = $2, currency = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + businessColumns

	return scanBusiness(q.QueryRow(ctx, query, b.Name, b.Category, b.Currency, b.ID))
}

// Delete implements business.BusinessRepository.
func (r *businessRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	return err
}

// CountByOwner implements business.BusinessRepository.
func (r *businessRepositoryImpl) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM businesses WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByOwnerAndName implements business.BusinessRepository.
func (r *businessRepositoryImpl) ExistsByOwnerAndName(ctx context.Context, ownerID, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM businesses WHERE owner_id = $1 AND LOWER(name) = LOWER($2))`

	var exists bool
	if err := q.QueryRow(ctx, query, ownerID, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
