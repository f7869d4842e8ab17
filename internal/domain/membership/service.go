package membership

import (
	"context"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

type TeamService interface {
	ListMembers(ctx context.Context, businessID string) ([]Membership, error)
	// ChangeRole reassigns a member's role. The owner role can neither be
	// granted nor taken away here; ownership moves with the business.
	ChangeRole(ctx context.Context, businessID, memberID string, role user.Role) (Membership, error)
	// RemoveMember deactivates the membership. The owner cannot be removed.
	RemoveMember(ctx context.Context, businessID, memberID string) error
}
