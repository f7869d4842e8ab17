package invitation

import "errors"

var (
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationExpired   = errors.New("invitation has expired")
	ErrInvitationProcessed = errors.New("invitation has already been processed")
	ErrInviteeAlreadyIn    = errors.New("this email already belongs to a member")
	ErrRoleNotInvitable    = errors.New("cannot invite someone as owner")
	ErrInviterOutranked    = errors.New("cannot invite a role at or above your own")
)
