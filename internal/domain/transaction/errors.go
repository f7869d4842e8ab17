package transaction

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrWrongBusiness       = errors.New("transaction belongs to another business")
)
