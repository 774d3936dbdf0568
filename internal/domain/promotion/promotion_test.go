package promotion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newPercentage(t *testing.T, value, maxDiscount int64) *Promotion {
	t.Helper()
	p, err := NewPromotion(NewPromotionParams{
		Code:          " sale10 ",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: d(value),
		MinPurchase:   d(100000),
		MaxDiscount:   d(maxDiscount),
	})
	require.NoError(t, err)
	return p
}

func TestNewPromotion_NormalizesCode(t *testing.T) {
	p := newPercentage(t, 10, 0)
	assert.Equal(t, "SALE10", p.Code())
	assert.True(t, p.IsActive())
}

func TestNewPromotion_Invalid(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	cases := []NewPromotionParams{
		{Code: "", DiscountType: DiscountTypeFixed, DiscountValue: d(1)},
		{Code: "X", DiscountType: "bogo", DiscountValue: d(1)},
		{Code: "X", DiscountType: DiscountTypeFixed, DiscountValue: d(0)},
		{Code: "X", DiscountType: DiscountTypePercentage, DiscountValue: d(101)},
		{Code: "X", DiscountType: DiscountTypeFixed, DiscountValue: d(1), UsageLimit: -1},
		{Code: "X", DiscountType: DiscountTypeFixed, DiscountValue: d(1), StartDate: &start, EndDate: &end},
	}
	for _, c := range cases {
		_, err := NewPromotion(c)
		assert.Error(t, err, c)
	}
}

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name     string
		promo    func(t *testing.T) *Promotion
		subtotal int64
		want     int64
	}{
		{"percentage", func(t *testing.T) *Promotion { return newPercentage(t, 10, 0) }, 150000, 15000},
		{"percentage capped", func(t *testing.T) *Promotion { return newPercentage(t, 50, 20000) }, 150000, 20000},
		{"percentage rounds to dong", func(t *testing.T) *Promotion { return newPercentage(t, 15, 0) }, 99999, 15000},
		{"fixed", func(t *testing.T) *Promotion {
			p, err := NewPromotion(NewPromotionParams{Code: "F", DiscountType: DiscountTypeFixed, DiscountValue: d(30000)})
			require.NoError(t, err)
			return p
		}, 150000, 30000},
		{"fixed never above subtotal", func(t *testing.T) *Promotion {
			p, err := NewPromotion(NewPromotionParams{Code: "F", DiscountType: DiscountTypeFixed, DiscountValue: d(30000)})
			require.NoError(t, err)
			return p
		}, 20000, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.promo(t).CalculateDiscount(d(tt.subtotal))
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	base := PromotionReconstructParams{
		ID: "p1", Code: "SALE", DiscountType: DiscountTypeFixed, DiscountValue: d(1000),
		MinPurchase: d(100000), IsActive: true,
	}

	tests := []struct {
		name    string
		mutate  func(p *PromotionReconstructParams)
		total   int64
		wantErr error
	}{
		{"eligible", func(p *PromotionReconstructParams) {}, 100000, nil},
		{"inactive", func(p *PromotionReconstructParams) { p.IsActive = false }, 100000, ErrPromotionInactive},
		{"not started", func(p *PromotionReconstructParams) { p.StartDate = &tomorrow }, 100000, ErrNotStarted},
		{"expired", func(p *PromotionReconstructParams) { p.StartDate = &past; p.EndDate = &yesterday }, 100000, ErrExpired},
		{"below minimum", func(p *PromotionReconstructParams) {}, 99999, ErrMinimumNotMet},
		{"exhausted", func(p *PromotionReconstructParams) { p.UsageLimit = 5; p.UsedCount = 5 }, 100000, ErrUsageExhausted},
		{"unlimited usage", func(p *PromotionReconstructParams) { p.UsageLimit = 0; p.UsedCount = 500 }, 100000, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := base
			tt.mutate(&params)
			err := ReconstructPromotion(params).CheckEligibility(d(tt.total), now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
