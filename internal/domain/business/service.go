package business

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
)

type BusinessService interface {
	// Create creates a business and the owner membership atomically.
	Create(ctx context.Context, ownerID string, req CreateBusinessRequest) (Business, error)
	Get(ctx context.Context, businessID string) (Business, error)
	// Update and Delete are owner-only.
	Update(ctx context.Context, actorID, businessID string, req UpdateBusinessRequest) (Business, error)
	Delete(ctx context.Context, actorID, businessID string) error
	// ListForUser returns the caller's active memberships with business names.
	ListForUser(ctx context.Context, userID string) ([]membership.Membership, error)
}
