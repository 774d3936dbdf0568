package usecases

import (
	"context"

	"github.com/localshop/storefront/internal/domain/promotion"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

type ListPromotionsUseCase struct {
	promotionRepo promotion.Repository
	logger        logger.Interface
}

func NewListPromotionsUseCase(promotionRepo promotion.Repository, logger logger.Interface) *ListPromotionsUseCase {
	return &ListPromotionsUseCase{
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

func (uc *ListPromotionsUseCase) Execute(ctx context.Context, page, pageSize int) ([]*promotion.Promotion, int64, error) {
	p := utils.ValidatePagination(page, pageSize)
	promos, total, err := uc.promotionRepo.List(ctx, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list promotions", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list promotions").WithCause(err)
	}
	return promos, total, nil
}
