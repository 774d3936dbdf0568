package handlers

import (
	"context"

	promotionUsecases "github.com/localshop/storefront/internal/application/promotion/usecases"
	"github.com/localshop/storefront/internal/domain/promotion"
)

// Use case interfaces for PromotionHandler

type validatePromotionUseCase interface {
	Execute(ctx context.Context, query promotionUsecases.ValidatePromotionQuery) (*promotionUsecases.ValidatePromotionResult, error)
}

type createPromotionUseCase interface {
	Execute(ctx context.Context, cmd promotionUsecases.CreatePromotionCommand) (*promotion.Promotion, error)
}

type listPromotionsUseCase interface {
	Execute(ctx context.Context, page, pageSize int) ([]*promotion.Promotion, int64, error)
}
