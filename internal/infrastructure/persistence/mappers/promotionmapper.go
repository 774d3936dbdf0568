package mappers

import (
	"github.com/localshop/storefront/internal/domain/promotion"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

func PromotionToModel(p *promotion.Promotion) *models.PromotionModel {
	return &models.PromotionModel{
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
		UpdatedAt:     p.UpdatedAt(),
	}
}

func PromotionToDomain(model *models.PromotionModel) *promotion.Promotion {
	return promotion.ReconstructPromotion(promotion.PromotionReconstructParams{
		ID:            model.ID,
		Code:          model.Code,
		Description:   model.Description,
		DiscountType:  promotion.DiscountType(model.DiscountType),
		DiscountValue: model.DiscountValue,
		MinPurchase:   model.MinPurchase,
		MaxDiscount:   model.MaxDiscount,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		UsageLimit:    model.UsageLimit,
		UsedCount:     model.UsedCount,
		IsActive:      model.IsActive,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}
