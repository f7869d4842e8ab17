package dashboard

import "errors"

var (
	ErrActivityAccessDenied = errors.New("role may not view recent activity")
	ErrInvalidMonth         = errors.New("month must be in YYYY-MM format")
)
