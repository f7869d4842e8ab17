package invitation

import "context"

type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByToken(ctx context.Context, token string) (Invitation, error)
	GetByID(ctx context.Context, id string) (Invitation, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Invitation, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	HasPendingForEmail(ctx context.Context, businessID, email string) (bool, error)
	ExpirePending(ctx context.Context) (int64, error)
}
