package paymentgateway

import (
	"context"
	"errors"
	"net/url"
	"time"

	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
)

var (
	// ErrInvalidSignature means the callback signature did not match the
	// recomputed one. Callers must not reveal which check failed.
	ErrInvalidSignature = errors.New("invalid callback signature")
	// ErrMalformedCallback means a signed callback is missing a field the
	// settlement needs or carries one that cannot be parsed.
	ErrMalformedCallback = errors.New("malformed callback")
)

// PaymentGateway defines the interface for payment gateway integrations
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error)
	// VerifyCallback checks the signature over the callback parameters and
	// parses them. The returned CallbackData.Amount is in the gateway's
	// scaled unit (amount x 100).
	VerifyCallback(params url.Values) (*CallbackData, error)
}

// CreatePaymentRequest contains the data needed to create a payment
type CreatePaymentRequest struct {
	OrderID   string
	Amount    vo.Money
	OrderInfo string
	ClientIP  string
	// ExpireAt is sent as vnp_ExpireDate when set.
	ExpireAt time.Time
}

type CreatePaymentResponse struct {
	TxnRef       string
	PaymentURL   string
	ScaledAmount int64
	CreatedAt    time.Time
}

// CallbackData contains the verified callback fields the settlement needs.
type CallbackData struct {
	TxnRef            string
	TransactionNo     string
	Amount            int64
	ResponseCode      string
	TransactionStatus string
	BankCode          string
	PaidAt            time.Time
	// Message is the customer-facing text for ResponseCode.
	Message string
	RawData map[string]string
}

// IsSuccess reports whether the gateway confirmed the money moved.
func (c *CallbackData) IsSuccess() bool {
	return c.ResponseCode == "00"
}
