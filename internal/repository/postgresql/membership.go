package postgresql

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type membershipRepositoryImpl struct {
	db *database.DB
}

func NewMembershipRepository(db *database.DB) membership.MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

func scanMembership(row pgx.Row) (membership.Membership, error) {
	var m membership.Membership
	err := row.Scan(
		&m.UserID,
		&m.BusinessID,
		&m.Role,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return membership.Membership{}, err
	}
	return m, nil
}

// Create implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO memberships (user_id, business_id, role, active)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, business_id, role, active, created_at, updated_at
	`

	return scanMembership(q.QueryRow(ctx, query, m.UserID, m.BusinessID, m.Role, m.Active))
}

// GetByUserAndBusiness implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, business_id, role, active, created_at, updated_at
		FROM memberships
		WHERE user_id = $1 AND business_id = $2
	`

	return scanMembership(q.QueryRow(ctx, query, userID, businessID))
}

// ListByUser implements membership.MembershipRepository. Joins the business
// name so the navigation layer can build its selection list in one query.
func (r *membershipRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.user_id, m.business_id, m.role, m.active, m.created_at, m.updated_at, b.name
		FROM memberships m
		JOIN businesses b ON b.id = m.business_id
		WHERE m.user_id = $1
		ORDER BY m.created_at ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []membership.Membership
	for rows.Next() {
		var m membership.Membership
		if err := rows.Scan(
			&m.UserID,
			&m.BusinessID,
			&m.Role,
			&m.Active,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.BusinessName,
		); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

// ListByBusiness implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.user_id, m.business_id, m.role, m.active, m.created_at, m.updated_at, u.name, u.email
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.business_id = $1
		ORDER BY m.created_at ASC
	`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []membership.Membership
	for rows.Next() {
		var m membership.Membership
		if err := rows.Scan(
			&m.UserID,
			&m.BusinessID,
			&m.Role,
			&m.Active,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.MemberName,
			&m.MemberEmail,
		); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

// UpdateRole implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) UpdateRole(ctx context.Context, userID, businessID string, role user.Role) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE memberships
		SET role = $1, updated_at = NOW()
		WHERE user_id = $2 AND business_id = $3
		RETURNING user_id, business_id, role, active, created_at, updated_at
	`

	return scanMembership(q.QueryRow(ctx, query, role, userID, businessID))
}

// Deactivate implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Deactivate(ctx context.Context, userID, businessID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE memberships
		SET active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND business_id = $2
	`

	tag, err := q.Exec(ctx, query, userID, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
