package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderPaidNotifier sends the customer confirmation after a settlement.
type OrderPaidNotifier interface {
	NotifyOrderPaid(ctx context.Context, cmd OrderPaidNotification) error
}

// OrderPaidNotification contains data for the order paid confirmation
type OrderPaidNotification struct {
	OrderID       string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Amount        decimal.Decimal
	TxnRef        string
	TransactionNo string
	PaidAt        time.Time
}

// PaymentMetrics records payment flow outcomes. Implementations must be safe
// for concurrent use.
type PaymentMetrics interface {
	PaymentCreated()
	CallbackHandled(source, outcome string, duration time.Duration)
	PaymentsExpired(count int)
}

type nopMetrics struct{}

func (nopMetrics) PaymentCreated()                               {}
func (nopMetrics) CallbackHandled(string, string, time.Duration) {}
func (nopMetrics) PaymentsExpired(int)                           {}
