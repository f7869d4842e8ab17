package navigation

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
)

// Session is what the identity provider yields for an authenticated user.
type Session struct {
	UserID string
	Email  string
}

// IdentityProvider is the narrow slice of the auth layer the machine consumes.
// Token issuance, OAuth flows and credential storage live elsewhere; the
// machine only reacts to session presence or absence.
type IdentityProvider interface {
	// CurrentSession returns the active session for the user, or nil when the
	// session is gone (logged out, revoked, expired).
	CurrentSession(ctx context.Context, userID string) (*Session, error)
}

// DataStore is the read-only slice of the persistence layer the machine
// consumes. Calls may be slow and may fail; the machine never retries them.
type DataStore interface {
	MembershipsForUser(ctx context.Context, userID string) ([]membership.Membership, error)
	BusinessByID(ctx context.Context, businessID string) (business.Business, error)
}
