package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/domain/promotion"
)

type ValidatePromotionRequest struct {
	Code     string          `json:"code" binding:"required,max=50"`
	Subtotal decimal.Decimal `json:"subtotal" binding:"required"`
}

type ValidatePromotionResponse struct {
	Code           string          `json:"code"`
	Description    string          `json:"description,omitempty"`
	DiscountType   string          `json:"discount_type"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

type CreatePromotionRequest struct {
	Code          string          `json:"code" binding:"required,max=50"`
	Description   string          `json:"description" binding:"max=500"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal `json:"discount_value" binding:"required"`
	MinPurchase   decimal.Decimal `json:"min_purchase"`
	MaxDiscount   decimal.Decimal `json:"max_discount"`
	StartDate     *time.Time      `json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	UsageLimit    int             `json:"usage_limit" binding:"min=0"`
}

type PromotionResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Description   string          `json:"description,omitempty"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinPurchase   decimal.Decimal `json:"min_purchase"`
	MaxDiscount   decimal.Decimal `json:"max_discount"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	UsageLimit    int             `json:"usage_limit"`
	UsedCount     int             `json:"used_count"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToPromotionResponse(p *promotion.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:            p.ID(),
		Code:          p.Code(),
		Description:   p.Description(),
		DiscountType:  string(p.DiscountType()),
		DiscountValue: p.DiscountValue(),
		MinPurchase:   p.MinPurchase(),
		MaxDiscount:   p.MaxDiscount(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		UsageLimit:    p.UsageLimit(),
		UsedCount:     p.UsedCount(),
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
	}
}
