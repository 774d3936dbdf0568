package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNotPayable       = errors.New("order is not awaiting online payment")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrNonPositiveTotal = errors.New("order total must be greater than zero")
)
