package postgresql

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/invitation"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const invitationColumns = `id, business_id, email, role, token, status, invited_by, expires_at, created_at, updated_at`

type invitationRepositoryImpl struct {
	db *database.DB
}

func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID,
		&inv.BusinessID,
		&inv.Email,
		&inv.Role,
		&inv.Token,
		&inv.Status,
		&inv.InvitedBy,
		&inv.ExpiresAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return invitation.Invitation{}, err
	}
	return inv, nil
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (business_id, email, role, token, status, invited_by, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + invitationColumns

	return scanInvitation(q.QueryRow(ctx, query,
		inv.BusinessID, inv.Email, inv.Role, inv.Token, inv.Status, inv.InvitedBy, inv.ExpiresAt,
	))
}

// GetByToken implements invitation.InvitationRepository. Joins the business
// and inviter names for the acceptance screen.
func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.business_id, i.email, i.role, i.token, i.status, i.invited_by,
			   i.expires_at, i.created_at, i.updated_at, b.name, u.name
		FROM invitations i
		JOIN businesses b ON b.id = i.business_id
		JOIN users u ON u.id = i.invited_by
		WHERE i.token = $1
	`

	var inv invitation.Invitation
	err := q.QueryRow(ctx, query, token).Scan(
		&inv.ID,
		&inv.BusinessID,
		&inv.Email,
		&inv.Role,
		&inv.Token,
		&inv.Status,
		&inv.InvitedBy,
		&inv.ExpiresAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.BusinessName,
		&inv.InviterName,
	)
	if err != nil {
		return invitation.Invitation{}, err
	}
	return inv, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`

	return scanInvitation(q.QueryRow(ctx, query, id))
}

// ListByBusiness implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE business_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

// UpdateStatus implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status invitation.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE invitations SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// HasPendingForEmail implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) HasPendingForEmail(ctx context.Context, businessID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE business_id = $1 AND LOWER(email) = LOWER($2)
			  AND status = 'pending' AND expires_at > NOW()
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, businessID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ExpirePending implements invitation.InvitationRepository. Run by the cron
// sweep; returns how many rows flipped.
func (r *invitationRepositoryImpl) ExpirePending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND expires_at <= NOW()
	`

	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
