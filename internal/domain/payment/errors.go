package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrAlreadyResolved is returned when a transaction has already left pending,
	// either in memory or because a concurrent writer won the conditional update.
	ErrAlreadyResolved = errors.New("payment already resolved")
	ErrAmountMismatch  = errors.New("payment amount mismatch")
)
