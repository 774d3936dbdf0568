package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/domain/promotion"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type CreatePromotionCommand struct {
	Code          string
	Description   string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinPurchase   decimal.Decimal
	MaxDiscount   decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	UsageLimit    int
}

type CreatePromotionUseCase struct {
	promotionRepo promotion.Repository
	logger        logger.Interface
}

func NewCreatePromotionUseCase(promotionRepo promotion.Repository, logger logger.Interface) *CreatePromotionUseCase {
	return &CreatePromotionUseCase{
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

func (uc *CreatePromotionUseCase) Execute(ctx context.Context, cmd CreatePromotionCommand) (*promotion.Promotion, error) {
	promo, err := promotion.NewPromotion(promotion.NewPromotionParams{
		Code:          cmd.Code,
		Description:   cmd.Description,
		DiscountType:  promotion.DiscountType(cmd.DiscountType),
		DiscountValue: cmd.DiscountValue,
		MinPurchase:   cmd.MinPurchase,
		MaxDiscount:   cmd.MaxDiscount,
		StartDate:     cmd.StartDate,
		EndDate:       cmd.EndDate,
		UsageLimit:    cmd.UsageLimit,
	})
	if err != nil {
		return nil, apperrors.NewValidationError("invalid promotion", err.Error())
	}

	if err := uc.promotionRepo.Create(ctx, promo); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("promotion code already exists", promo.Code())
		}
		uc.logger.Errorw("failed to create promotion", "error", err, "code", promo.Code())
		return nil, apperrors.NewInternalError("failed to create promotion").WithCause(err)
	}

	uc.logger.Infow("promotion created", "promotion_id", promo.ID(), "code", promo.Code())
	return promo, nil
}
