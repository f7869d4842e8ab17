package invitation

import "context"

type InvitationService interface {
	// Create issues an invitation and emails the invitee. The inviter may
	// not invite a role at or above their own.
	Create(ctx context.Context, businessID, inviterID string, req CreateInvitationRequest) (Invitation, error)
	// Preview returns the invitation behind a token without consuming it.
	Preview(ctx context.Context, token string) (Invitation, error)
	// Accept consumes a pending invitation and creates the membership.
	Accept(ctx context.Context, userID, userEmail, token string) (Invitation, error)
	Revoke(ctx context.Context, businessID, invitationID string) error
	ListByBusiness(ctx context.Context, businessID string) ([]Invitation, error)
}
