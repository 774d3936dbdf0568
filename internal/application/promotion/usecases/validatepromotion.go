package usecases

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/domain/promotion"
	"github.com/localshop/storefront/internal/shared/biztime"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type ValidatePromotionQuery struct {
	Code     string
	Subtotal decimal.Decimal
}

type ValidatePromotionResult struct {
	Promotion      *promotion.Promotion
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

type ValidatePromotionUseCase struct {
	promotionRepo promotion.Repository
	logger        logger.Interface
}

func NewValidatePromotionUseCase(promotionRepo promotion.Repository, logger logger.Interface) *ValidatePromotionUseCase {
	return &ValidatePromotionUseCase{
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

// Execute previews the discount a code gives on subtotal without consuming it.
func (uc *ValidatePromotionUseCase) Execute(ctx context.Context, query ValidatePromotionQuery) (*ValidatePromotionResult, error) {
	code := promotion.NormalizeCode(query.Code)
	if code == "" {
		return nil, apperrors.NewValidationError("promotion code is required")
	}
	if query.Subtotal.IsNegative() {
		return nil, apperrors.NewValidationError("subtotal cannot be negative")
	}

	promo, err := uc.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			return nil, apperrors.NewNotFoundError("promotion not found").WithCause(err)
		}
		uc.logger.Errorw("failed to get promotion", "error", err, "code", code)
		return nil, apperrors.NewInternalError("failed to validate promotion").WithCause(err)
	}

	if err := promo.CheckEligibility(query.Subtotal, biztime.NowUTC()); err != nil {
		return nil, apperrors.NewValidationError("promotion not applicable", err.Error()).WithCause(err)
	}

	discount := promo.CalculateDiscount(query.Subtotal)
	return &ValidatePromotionResult{
		Promotion:      promo,
		DiscountAmount: discount,
		FinalAmount:    query.Subtotal.Sub(discount),
	}, nil
}
