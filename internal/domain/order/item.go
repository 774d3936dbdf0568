package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/shared/id"
)

// OrderItem is one order line. Name and unit price are copied from the
// catalog when the order is placed so later price changes do not rewrite history.
type OrderItem struct {
	id          string
	orderID     string
	productID   string
	productName string
	unitPrice   decimal.Decimal
	quantity    int
}

func NewOrderItem(productID, productName string, unitPrice decimal.Decimal, quantity int) (*OrderItem, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity for product %s must be positive", productID)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("unit price for product %s must be positive", productID)
	}
	return &OrderItem{
		id:          id.NewUUID(),
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

func ReconstructOrderItem(itemID, orderID, productID, productName string, unitPrice decimal.Decimal, quantity int) *OrderItem {
	return &OrderItem{
		id:          itemID,
		orderID:     orderID,
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *OrderItem) ID() string {
	return i.id
}

func (i *OrderItem) OrderID() string {
	return i.orderID
}

func (i *OrderItem) ProductID() string {
	return i.productID
}

func (i *OrderItem) ProductName() string {
	return i.productName
}

func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}
