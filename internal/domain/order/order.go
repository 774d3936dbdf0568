package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Customer is the contact and delivery information captured at checkout.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (c Customer) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("customer name is required")
	}
	if !phonePattern.MatchString(c.Phone) {
		return fmt.Errorf("customer phone must be 10 digits")
	}
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("shipping address is required")
	}
	return nil
}

// PaymentDetails is stored on the order once the gateway confirms payment.
type PaymentDetails struct {
	TxnRef        string    `json:"txn_ref"`
	TransactionNo string    `json:"transaction_no"`
	BankCode      string    `json:"bank_code,omitempty"`
	PaymentDate   time.Time `json:"payment_date"`
}

type Order struct {
	id             string
	orderNumber    string
	userID         *string
	customer       Customer
	items          []*OrderItem
	subtotal       decimal.Decimal
	discountAmount decimal.Decimal
	totalAmount    decimal.Decimal
	promotionCode  *string
	paymentMethod  vo.PaymentMethod
	paymentStatus  vo.PaymentStatus
	status         vo.OrderStatus
	notes          string
	paymentDetails *PaymentDetails
	createdAt      time.Time
	updatedAt      time.Time
}

type NewOrderParams struct {
	OrderNumber   string
	UserID        *string
	Customer      Customer
	Items         []*OrderItem
	PaymentMethod vo.PaymentMethod
	Notes         string
}

func NewOrder(params NewOrderParams) (*Order, error) {
	if params.OrderNumber == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if err := params.Customer.validate(); err != nil {
		return nil, err
	}
	if len(params.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !params.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", params.PaymentMethod)
	}

	now := biztime.NowUTC()
	o := &Order{
		id:            id.NewUUID(),
		orderNumber:   params.OrderNumber,
		userID:        params.UserID,
		customer:      params.Customer,
		paymentMethod: params.PaymentMethod,
		paymentStatus: vo.PaymentStatusPending,
		status:        vo.OrderStatusPending,
		notes:         params.Notes,
		createdAt:     now,
		updatedAt:     now,
	}

	subtotal := decimal.Zero
	for _, item := range params.Items {
		item.orderID = o.id
		subtotal = subtotal.Add(item.Subtotal())
	}
	o.items = params.Items
	o.subtotal = subtotal
	o.discountAmount = decimal.Zero
	o.totalAmount = subtotal

	return o, nil
}

// ApplyDiscount records a promotion. The discount is capped at the subtotal.
func (o *Order) ApplyDiscount(code string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("discount cannot be negative")
	}
	if amount.GreaterThan(o.subtotal) {
		amount = o.subtotal
	}
	o.promotionCode = &code
	o.discountAmount = amount
	o.totalAmount = o.subtotal.Sub(amount)
	o.updatedAt = biztime.NowUTC()
	return nil
}

// EnsurePayable rejects orders whose total after discount is not positive.
func (o *Order) EnsurePayable() error {
	if !o.totalAmount.IsPositive() {
		return ErrNonPositiveTotal
	}
	return nil
}

// CanStartOnlinePayment reports whether a gateway payment may be opened for
// this order: it must use an online method, still be pending, and not be paid.
func (o *Order) CanStartOnlinePayment() error {
	if !o.paymentMethod.IsOnline() {
		return fmt.Errorf("payment method %s: %w", o.paymentMethod, ErrNotPayable)
	}
	if o.status != vo.OrderStatusPending {
		return fmt.Errorf("order status %s: %w", o.status, ErrNotPayable)
	}
	if o.paymentStatus.IsPaid() {
		return fmt.Errorf("order already paid: %w", ErrNotPayable)
	}
	return nil
}

// ChangeStatus applies an administrative status change. Cash-on-delivery
// orders derive their payment status from the new status (completed means
// the courier collected the money); online orders take the requested payment
// status, defaulting to pending.
func (o *Order) ChangeStatus(status vo.OrderStatus, requested vo.PaymentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if requested != "" && !requested.IsValid() {
		return fmt.Errorf("invalid payment status: %s", requested)
	}

	var paymentStatus vo.PaymentStatus
	if o.paymentMethod.IsCOD() {
		switch status {
		case vo.OrderStatusCompleted:
			paymentStatus = vo.PaymentStatusPaid
		case vo.OrderStatusCancelled:
			paymentStatus = vo.PaymentStatusFailed
		default:
			paymentStatus = vo.PaymentStatusPending
		}
	} else {
		paymentStatus = requested
		if paymentStatus == "" {
			paymentStatus = vo.PaymentStatusPending
		}
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.updatedAt = biztime.NowUTC()
	return nil
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) UserID() *string {
	return o.userID
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Items() []*OrderItem {
	return o.items
}

func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discountAmount
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) PromotionCode() *string {
	return o.promotionCode
}

func (o *Order) PaymentMethod() vo.PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() vo.PaymentStatus {
	return o.paymentStatus
}

func (o *Order) Status() vo.OrderStatus {
	return o.status
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) PaymentDetails() *PaymentDetails {
	return o.paymentDetails
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// BelongsTo reports whether the order was placed by userID.
func (o *Order) BelongsTo(userID string) bool {
	return o.userID != nil && *o.userID == userID
}

type OrderReconstructParams struct {
	ID             string
	OrderNumber    string
	UserID         *string
	Customer       Customer
	Items          []*OrderItem
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PromotionCode  *string
	PaymentMethod  vo.PaymentMethod
	PaymentStatus  vo.PaymentStatus
	Status         vo.OrderStatus
	Notes          string
	PaymentDetails *PaymentDetails
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructOrderWithParams(params OrderReconstructParams) *Order {
	return &Order{
		id:             params.ID,
		orderNumber:    params.OrderNumber,
		userID:         params.UserID,
		customer:       params.Customer,
		items:          params.Items,
		subtotal:       params.Subtotal,
		discountAmount: params.DiscountAmount,
		totalAmount:    params.TotalAmount,
		promotionCode:  params.PromotionCode,
		paymentMethod:  params.PaymentMethod,
		paymentStatus:  params.PaymentStatus,
		status:         params.Status,
		notes:          params.Notes,
		paymentDetails: params.PaymentDetails,
		createdAt:      params.CreatedAt,
		updatedAt:      params.UpdatedAt,
	}
}
