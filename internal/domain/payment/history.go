package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

// MethodVNPay is recorded on history rows written for gateway settlements.
const MethodVNPay = "VNPAY"

// History is the append-only audit row written once per successful settlement.
type History struct {
	ID            string
	OrderID       string
	PaymentID     string
	TxnRef        string
	Amount        decimal.Decimal
	Status        string
	TransactionNo string
	Method        string
	// Details holds the verified callback parameters minus the signature.
	Details   map[string]string
	CreatedAt time.Time
}

// NewPaidHistory records the settlement of p with the raw callback values.
func NewPaidHistory(p *Payment, details map[string]string) *History {
	transactionNo := ""
	if p.TransactionNo() != nil {
		transactionNo = *p.TransactionNo()
	}
	return &History{
		ID:            id.NewUUID(),
		OrderID:       p.OrderID(),
		PaymentID:     p.ID(),
		TxnRef:        p.TxnRef(),
		Amount:        p.Amount().Amount(),
		Status:        p.Status().String(),
		TransactionNo: transactionNo,
		Method:        MethodVNPay,
		Details:       details,
		CreatedAt:     biztime.NowUTC(),
	}
}
