package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/domain/order"
	vo "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/infrastructure/persistence/mappers"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/db"
)

type OrderRepository struct {
	db *gorm.DB
}

var _ order.Repository = (*OrderRepository)(nil)

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) CreateItems(ctx context.Context, orderID string, items []*order.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*models.OrderItemModel, 0, len(items))
	now := biztime.NowUTC()
	for _, item := range items {
		m := mappers.OrderItemToModel(orderID, item)
		m.CreatedAt = now
		itemModels = append(itemModels, m)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&itemModels).Error; err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}
	return nil
}

// Delete removes the order and any items already written for it.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("order_id = ?", id).Delete(&models.OrderItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if err := tx.Where("id = ?", id).Delete(&models.OrderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.OrderModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	var itemModels []models.OrderItemModel
	if err := tx.Where("order_id = ?", id).Order("created_at ASC, id ASC").Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return mappers.OrderToDomain(&model, itemModels)
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*order.Order, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.OrderModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orderModels []models.OrderModel
	query := tx.Where("user_id = ?", userID).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	if len(orderModels) == 0 {
		return []*order.Order{}, total, nil
	}

	ids := make([]string, len(orderModels))
	for i, m := range orderModels {
		ids[i] = m.ID
	}
	var itemModels []models.OrderItemModel
	if err := tx.Where("order_id IN ?", ids).Order("created_at ASC, id ASC").Find(&itemModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list order items: %w", err)
	}
	itemsByOrder := make(map[string][]models.OrderItemModel, len(orderModels))
	for _, item := range itemModels {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	orders := make([]*order.Order, 0, len(orderModels))
	for i := range orderModels {
		o, err := mappers.OrderToDomain(&orderModels[i], itemsByOrder[orderModels[i].ID])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", o.ID()).
		Updates(map[string]any{
			"status":         o.Status().String(),
			"payment_status": o.PaymentStatus().String(),
			"updated_at":     o.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	return nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string, details order.PaymentDetails) (bool, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return false, fmt.Errorf("failed to encode payment details: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ? AND payment_status <> ?", id, vo.PaymentStatusPaid).
		Updates(map[string]any{
			"payment_status": vo.PaymentStatusPaid.String(),
			// A cancelled order records the money but is not reopened.
			"status": gorm.Expr("CASE WHEN status = ? THEN status ELSE ? END",
				vo.OrderStatusCancelled.String(), vo.OrderStatusProcessing.String()),
			"payment_details": datatypes.JSON(raw),
			"updated_at":      biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *OrderRepository) MarkPaymentFailed(ctx context.Context, id string) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ? AND payment_status = ?", id, vo.PaymentStatusPending).
		Updates(map[string]any{
			"payment_status": vo.PaymentStatusFailed.String(),
			"updated_at":     biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark order payment failed: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
