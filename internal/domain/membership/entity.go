package membership

import (
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

// Membership ties a user to a business with exactly one role. The permission
// and navigation layers only ever read memberships; mutation happens through
// invitation acceptance, business creation and team management.
type Membership struct {
	UserID     string
	BusinessID string
	Role       user.Role
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	BusinessName *string
	MemberName   *string
	MemberEmail  *string
}
