package invitation

import (
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRevoked  Status = "revoked"
	StatusExpired  Status = "expired"
)

type Invitation struct {
	ID         string
	BusinessID string
	Email      string
	Role       user.Role
	Token      string
	Status     Status
	InvitedBy  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	BusinessName *string
	InviterName  *string
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
