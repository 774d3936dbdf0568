package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/domain/order"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=999"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required,max=255"`
	CustomerEmail   string             `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone   string             `json:"customer_phone" binding:"required,vnphone"`
	ShippingAddress string             `json:"shipping_address" binding:"required,max=1000"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod   string             `json:"payment_method" binding:"omitempty,oneof=cod vnpay"`
	Notes           string             `json:"notes" binding:"max=2000"`
	PromotionCode   string             `json:"promotion_code" binding:"max=50"`
}

type UpdateOrderStatusRequest struct {
	OrderID       string `json:"order_id" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=pending processing shipping completed cancelled"`
	PaymentStatus string `json:"payment_status" binding:"omitempty,oneof=pending paid failed"`
}

type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID              string                `json:"id"`
	OrderNumber     string                `json:"order_number"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email,omitempty"`
	CustomerPhone   string                `json:"customer_phone"`
	ShippingAddress string                `json:"shipping_address"`
	Items           []OrderItemResponse   `json:"items"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	DiscountAmount  decimal.Decimal       `json:"discount_amount"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	PromotionCode   string                `json:"promotion_code,omitempty"`
	PaymentMethod   string                `json:"payment_method"`
	PaymentStatus   string                `json:"payment_status"`
	Status          string                `json:"status"`
	Notes           string                `json:"notes,omitempty"`
	PaymentDetails  *order.PaymentDetails `json:"payment_details,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func ToOrderResponse(o *order.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	c := o.Customer()
	resp := &OrderResponse{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		CustomerName:    c.Name,
		CustomerEmail:   c.Email,
		CustomerPhone:   c.Phone,
		ShippingAddress: c.Address,
		Items:           make([]OrderItemResponse, 0, len(o.Items())),
		Subtotal:        o.Subtotal(),
		DiscountAmount:  o.DiscountAmount(),
		TotalAmount:     o.TotalAmount(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		Status:          o.Status().String(),
		Notes:           o.Notes(),
		PaymentDetails:  o.PaymentDetails(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
	if o.PromotionCode() != nil {
		resp.PromotionCode = *o.PromotionCode()
	}
	for _, item := range o.Items() {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}
	return resp
}

func ToOrderResponses(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
