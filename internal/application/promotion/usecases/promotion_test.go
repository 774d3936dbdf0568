package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/domain/promotion"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type memPromotionRepo struct {
	byCode map[string]*promotion.Promotion
}

func (r *memPromotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	if _, ok := r.byCode[p.Code()]; ok {
		return errors.New("UNIQUE constraint failed: promotions.code")
	}
	r.byCode[p.Code()] = p
	return nil
}

func (r *memPromotionRepo) GetByCode(_ context.Context, code string) (*promotion.Promotion, error) {
	if p, ok := r.byCode[code]; ok {
		return p, nil
	}
	return nil, promotion.ErrPromotionNotFound
}

func (r *memPromotionRepo) List(context.Context, int, int) ([]*promotion.Promotion, int64, error) {
	out := make([]*promotion.Promotion, 0, len(r.byCode))
	for _, p := range r.byCode {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *memPromotionRepo) ConsumeUsage(context.Context, string) (bool, error) {
	return true, nil
}

func TestCreateAndValidatePromotion(t *testing.T) {
	repo := &memPromotionRepo{byCode: map[string]*promotion.Promotion{}}
	create := NewCreatePromotionUseCase(repo, logger.NewNopLogger())
	validate := NewValidatePromotionUseCase(repo, logger.NewNopLogger())
	ctx := context.Background()

	_, err := create.Execute(ctx, CreatePromotionCommand{
		Code:          "tet2024",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(15),
		MinPurchase:   decimal.NewFromInt(100000),
		MaxDiscount:   decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	_, err = create.Execute(ctx, CreatePromotionCommand{
		Code:          "TET2024",
		DiscountType:  "fixed",
		DiscountValue: decimal.NewFromInt(1000),
	})
	assert.True(t, apperrors.IsConflictError(err))

	result, err := validate.Execute(ctx, ValidatePromotionQuery{Code: "Tet2024", Subtotal: decimal.NewFromInt(500000)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50000).Equal(result.DiscountAmount), result.DiscountAmount.String())
	assert.True(t, decimal.NewFromInt(450000).Equal(result.FinalAmount))

	_, err = validate.Execute(ctx, ValidatePromotionQuery{Code: "TET2024", Subtotal: decimal.NewFromInt(50000)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, promotion.ErrMinimumNotMet))

	_, err = validate.Execute(ctx, ValidatePromotionQuery{Code: "NOPE", Subtotal: decimal.NewFromInt(50000)})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreatePromotion_RejectsInvalidWindow(t *testing.T) {
	repo := &memPromotionRepo{byCode: map[string]*promotion.Promotion{}}
	create := NewCreatePromotionUseCase(repo, logger.NewNopLogger())
	start := time.Now()
	end := start.Add(-time.Hour)

	_, err := create.Execute(context.Background(), CreatePromotionCommand{
		Code:          "X",
		DiscountType:  "fixed",
		DiscountValue: decimal.NewFromInt(1000),
		StartDate:     &start,
		EndDate:       &end,
	})
	assert.True(t, apperrors.IsValidationError(err))
}
