package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/localshop/storefront/internal/shared/constants"
)

type OrderModel struct {
	ID              string          `gorm:"primaryKey;size:36"`
	OrderNumber     string          `gorm:"uniqueIndex;not null;size:32"`
	UserID          *string         `gorm:"size:36;index"`
	CustomerName    string          `gorm:"not null;size:255"`
	CustomerEmail   string          `gorm:"size:255"`
	CustomerPhone   string          `gorm:"not null;size:20"`
	ShippingAddress string          `gorm:"type:text;not null"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PromotionCode   *string         `gorm:"size:50"`
	PaymentMethod   string          `gorm:"not null;size:20"`
	PaymentStatus   string          `gorm:"not null;size:20;index"`
	Status          string          `gorm:"not null;size:20;index"`
	Notes           string          `gorm:"type:text"`
	PaymentDetails  datatypes.JSON  `gorm:"type:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return constants.TableOrders
}

// OrderItemModel rows are unique per (order, product).
type OrderItemModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	OrderID     string          `gorm:"not null;size:36;uniqueIndex:idx_order_items_order_product"`
	ProductID   string          `gorm:"not null;size:36;uniqueIndex:idx_order_items_order_product"`
	ProductName string          `gorm:"not null;size:255"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   time.Time
}

func (OrderItemModel) TableName() string {
	return constants.TableOrderItems
}

type PromotionModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	Code          string          `gorm:"uniqueIndex;not null;size:50"`
	Description   string          `gorm:"type:text"`
	DiscountType  string          `gorm:"not null;size:20"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MinPurchase   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	MaxDiscount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	StartDate     *time.Time
	EndDate       *time.Time
	UsageLimit    int  `gorm:"not null;default:0"`
	UsedCount     int  `gorm:"not null;default:0"`
	IsActive      bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PromotionModel) TableName() string {
	return constants.TablePromotions
}
