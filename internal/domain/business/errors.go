package business

import "errors"

var (
	ErrBusinessNotFound   = errors.New("business not found")
	ErrNotBusinessOwner   = errors.New("only the business owner can do this")
	ErrBusinessNameExists = errors.New("you already have a business with this name")
)
