package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/localshop/storefront/internal/domain/order"
	vo "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) (*models.OrderModel, error) {
	customer := o.Customer()
	model := &models.OrderModel{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		UserID:          o.UserID(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		ShippingAddress: customer.Address,
		Subtotal:        o.Subtotal(),
		DiscountAmount:  o.DiscountAmount(),
		TotalAmount:     o.TotalAmount(),
		PromotionCode:   o.PromotionCode(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		Status:          o.Status().String(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}

	if details := o.PaymentDetails(); details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payment details: %w", err)
		}
		model.PaymentDetails = datatypes.JSON(raw)
	}

	return model, nil
}

func OrderToDomain(model *models.OrderModel, itemModels []models.OrderItemModel) (*order.Order, error) {
	method, err := vo.NewPaymentMethod(model.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := vo.NewPaymentStatus(model.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var details *order.PaymentDetails
	if len(model.PaymentDetails) > 0 {
		details = &order.PaymentDetails{}
		if err := json.Unmarshal(model.PaymentDetails, details); err != nil {
			return nil, fmt.Errorf("failed to decode payment details: %w", err)
		}
	}

	items := make([]*order.OrderItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, OrderItemToDomain(&itemModels[i]))
	}

	return order.ReconstructOrderWithParams(order.OrderReconstructParams{
		ID:          model.ID,
		OrderNumber: model.OrderNumber,
		UserID:      model.UserID,
		Customer: order.Customer{
			Name:    model.CustomerName,
			Email:   model.CustomerEmail,
			Phone:   model.CustomerPhone,
			Address: model.ShippingAddress,
		},
		Items:          items,
		Subtotal:       model.Subtotal,
		DiscountAmount: model.DiscountAmount,
		TotalAmount:    model.TotalAmount,
		PromotionCode:  model.PromotionCode,
		PaymentMethod:  method,
		PaymentStatus:  paymentStatus,
		Status:         status,
		Notes:          model.Notes,
		PaymentDetails: details,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}), nil
}

func OrderItemToModel(orderID string, item *order.OrderItem) *models.OrderItemModel {
	return &models.OrderItemModel{
		ID:          item.ID(),
		OrderID:     orderID,
		ProductID:   item.ProductID(),
		ProductName: item.ProductName(),
		UnitPrice:   item.UnitPrice(),
		Quantity:    item.Quantity(),
	}
}

func OrderItemToDomain(model *models.OrderItemModel) *order.OrderItem {
	return order.ReconstructOrderItem(model.ID, model.OrderID, model.ProductID, model.ProductName, model.UnitPrice, model.Quantity)
}
