package payment

import (
	"fmt"
	"time"

	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

// Payment is one attempt to settle an order through the gateway, keyed by
// the transaction reference sent as vnp_TxnRef.
type Payment struct {
	id      string
	txnRef  string
	orderID string
	amount  vo.Money
	status  vo.PaymentStatus

	transactionNo *string
	bankCode      *string
	responseCode  *string
	paymentURL    *string

	paidAt    *time.Time
	expiredAt time.Time

	metadata map[string]any

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewPayment(orderID, txnRef string, amount vo.Money, expiredAt time.Time) (*Payment, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if txnRef == "" {
		return nil, fmt.Errorf("transaction reference is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := biztime.NowUTC()
	if !expiredAt.After(now) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	return &Payment{
		id:        id.NewUUID(),
		txnRef:    txnRef,
		orderID:   orderID,
		amount:    amount,
		status:    vo.PaymentStatusPending,
		expiredAt: expiredAt,
		metadata:  make(map[string]any),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// MarkAsPaid is idempotent for an already paid payment and refuses any other
// terminal state.
func (p *Payment) MarkAsPaid(transactionNo, bankCode string, paidAt time.Time) error {
	if p.status == vo.PaymentStatusPaid {
		return nil
	}
	if !p.status.CanTransitionTo(vo.PaymentStatusPaid) {
		return fmt.Errorf("cannot mark payment as paid with status %s: %w", p.status, ErrAlreadyResolved)
	}

	code := ResponseCodeSuccess
	p.status = vo.PaymentStatusPaid
	p.transactionNo = &transactionNo
	p.bankCode = &bankCode
	p.responseCode = &code
	p.paidAt = &paidAt
	p.touch()

	return nil
}

func (p *Payment) MarkAsFailed(responseCode string) error {
	if p.status == vo.PaymentStatusFailed {
		return nil
	}
	if !p.status.CanTransitionTo(vo.PaymentStatusFailed) {
		return fmt.Errorf("cannot mark payment as failed with final status %s: %w", p.status, ErrAlreadyResolved)
	}

	p.status = vo.PaymentStatusFailed
	p.responseCode = &responseCode
	p.touch()

	return nil
}

func (p *Payment) MarkAsExpired() error {
	if p.status == vo.PaymentStatusExpired {
		return nil
	}
	if !p.status.CanTransitionTo(vo.PaymentStatusExpired) {
		return fmt.Errorf("cannot expire payment with final status %s: %w", p.status, ErrAlreadyResolved)
	}

	p.status = vo.PaymentStatusExpired
	p.touch()

	return nil
}

func (p *Payment) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Payment) SetPaymentURL(paymentURL string) {
	p.paymentURL = &paymentURL
	p.updatedAt = biztime.NowUTC()
}

// IsExpired reports whether a still-pending payment has outlived its TTL.
func (p *Payment) IsExpired(now time.Time) bool {
	return p.status == vo.PaymentStatusPending && now.After(p.expiredAt)
}

// ValidateCallbackAmount compares the gateway-scaled amount from a callback
// with the amount recorded when the request was built.
func (p *Payment) ValidateCallbackAmount(scaledAmount int64) error {
	if p.amount.ScaledAmount() != scaledAmount {
		return fmt.Errorf("expected %d, got %d: %w", p.amount.ScaledAmount(), scaledAmount, ErrAmountMismatch)
	}
	return nil
}

func (p *Payment) ID() string {
	return p.id
}

func (p *Payment) TxnRef() string {
	return p.txnRef
}

func (p *Payment) OrderID() string {
	return p.orderID
}

func (p *Payment) Amount() vo.Money {
	return p.amount
}

func (p *Payment) Status() vo.PaymentStatus {
	return p.status
}

func (p *Payment) TransactionNo() *string {
	return p.transactionNo
}

func (p *Payment) BankCode() *string {
	return p.bankCode
}

func (p *Payment) ResponseCode() *string {
	return p.responseCode
}

func (p *Payment) PaymentURL() *string {
	return p.paymentURL
}

func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

func (p *Payment) ExpiredAt() time.Time {
	return p.expiredAt
}

func (p *Payment) Metadata() map[string]any {
	return p.metadata
}

func (p *Payment) SetMetadata(key string, value any) {
	if p.metadata == nil {
		p.metadata = make(map[string]any)
	}
	p.metadata[key] = value
}

func (p *Payment) Version() int {
	return p.version
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// PaymentReconstructParams carries persisted state back into the aggregate.
type PaymentReconstructParams struct {
	ID            string
	TxnRef        string
	OrderID       string
	Amount        vo.Money
	Status        vo.PaymentStatus
	TransactionNo *string
	BankCode      *string
	ResponseCode  *string
	PaymentURL    *string
	PaidAt        *time.Time
	ExpiredAt     time.Time
	Metadata      map[string]any
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructPaymentWithParams(params PaymentReconstructParams) *Payment {
	metadata := params.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &Payment{
		id:            params.ID,
		txnRef:        params.TxnRef,
		orderID:       params.OrderID,
		amount:        params.Amount,
		status:        params.Status,
		transactionNo: params.TransactionNo,
		bankCode:      params.BankCode,
		responseCode:  params.ResponseCode,
		paymentURL:    params.PaymentURL,
		paidAt:        params.PaidAt,
		expiredAt:     params.ExpiredAt,
		metadata:      metadata,
		version:       params.Version,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}
