package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrOwnerAccessRequired  = errors.New("owner access required")
	ErrInsufficientRole     = errors.New("insufficient role for this action")
	ErrBusinessScopeMissing = errors.New("no business selected")
)
