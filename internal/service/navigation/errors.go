package navigation

import "errors"

var (
	ErrNotAuthenticated = errors.New("no active session")
	ErrNotAMember       = errors.New("user is not an active member of this business")
	ErrStaleTransition  = errors.New("transition superseded by a newer one")
	ErrFetchFailed      = errors.New("could not load businesses, please retry")
)
