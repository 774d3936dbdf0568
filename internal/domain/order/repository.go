package order

import "context"

// Repository persists orders. The header and its items are separate writes
// so callers can compensate when the second one fails.
type Repository interface {
	// Create inserts the order header only.
	Create(ctx context.Context, order *Order) error
	CreateItems(ctx context.Context, orderID string, items []*OrderItem) error
	Delete(ctx context.Context, id string) error
	// GetByID loads the order with its items; ErrOrderNotFound when absent.
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*Order, int64, error)
	UpdateStatus(ctx context.Context, order *Order) error
	// MarkPaid moves an unpaid order to paid/processing. A cancelled order
	// records the payment and stays cancelled. False means the order was
	// already paid or does not exist.
	MarkPaid(ctx context.Context, id string, details PaymentDetails) (bool, error)
	// MarkPaymentFailed flags a pending payment as failed and keeps the
	// order pending so the customer can retry.
	MarkPaymentFailed(ctx context.Context, id string) (bool, error)
}
