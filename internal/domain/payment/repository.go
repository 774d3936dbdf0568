package payment

import (
	"context"
	"time"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	// GetByTxnRef returns ErrPaymentNotFound when no row matches.
	GetByTxnRef(ctx context.Context, txnRef string) (*Payment, error)
	// GetActiveByOrderID returns the order's pending, unexpired payment or nil.
	GetActiveByOrderID(ctx context.Context, orderID string, now time.Time) (*Payment, error)
	// Resolve writes p's new status only while the stored row is in a status
	// that may move to it. It reports false when another writer got there
	// first.
	Resolve(ctx context.Context, payment *Payment) (bool, error)
	GetExpiredPending(ctx context.Context, now time.Time, limit int) ([]*Payment, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *History) error
	ListByOrderID(ctx context.Context, orderID string) ([]*History, error)
}
