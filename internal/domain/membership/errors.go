package membership

import "errors"

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyMember      = errors.New("user is already a member of this business")
	ErrCannotRemoveOwner  = errors.New("the business owner cannot be removed")
	ErrCannotDemoteOwner  = errors.New("the business owner role cannot be changed")
)
