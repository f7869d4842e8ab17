package membership

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

type MembershipRepository interface {
	Create(ctx context.Context, m Membership) (Membership, error)
	GetByUserAndBusiness(ctx context.Context, userID, businessID string) (Membership, error)
	ListByUser(ctx context.Context, userID string) ([]Membership, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Membership, error)
	UpdateRole(ctx context.Context, userID, businessID string, role user.Role) (Membership, error)
	Deactivate(ctx context.Context, userID, businessID string) error
}
