package promotion

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionInactive = errors.New("promotion is not active")
	ErrNotStarted        = errors.New("promotion has not started")
	ErrExpired           = errors.New("promotion has expired")
	ErrMinimumNotMet     = errors.New("order does not reach the minimum purchase")
	ErrUsageExhausted    = errors.New("promotion usage limit reached")
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

var hundred = decimal.NewFromInt(100)

// Promotion is a discount code. Zero MaxDiscount and UsageLimit mean unlimited.
type Promotion struct {
	id            string
	code          string
	description   string
	discountType  DiscountType
	discountValue decimal.Decimal
	minPurchase   decimal.Decimal
	maxDiscount   decimal.Decimal
	startDate     *time.Time
	endDate       *time.Time
	usageLimit    int
	usedCount     int
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

type NewPromotionParams struct {
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinPurchase   decimal.Decimal
	MaxDiscount   decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	UsageLimit    int
}

// NormalizeCode upper-cases and trims a code so lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewPromotion(params NewPromotionParams) (*Promotion, error) {
	code := NormalizeCode(params.Code)
	if code == "" {
		return nil, fmt.Errorf("promotion code is required")
	}
	if !params.DiscountType.IsValid() {
		return nil, fmt.Errorf("invalid discount type: %s", params.DiscountType)
	}
	if !params.DiscountValue.IsPositive() {
		return nil, fmt.Errorf("discount value must be positive")
	}
	if params.DiscountType == DiscountTypePercentage && params.DiscountValue.GreaterThan(hundred) {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}
	if params.MinPurchase.IsNegative() || params.MaxDiscount.IsNegative() {
		return nil, fmt.Errorf("minimum purchase and maximum discount cannot be negative")
	}
	if params.UsageLimit < 0 {
		return nil, fmt.Errorf("usage limit cannot be negative")
	}
	if params.StartDate != nil && params.EndDate != nil && !params.EndDate.After(*params.StartDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := biztime.NowUTC()
	return &Promotion{
		id:            id.NewUUID(),
		code:          code,
		description:   params.Description,
		discountType:  params.DiscountType,
		discountValue: params.DiscountValue,
		minPurchase:   params.MinPurchase,
		maxDiscount:   params.MaxDiscount,
		startDate:     params.StartDate,
		endDate:       params.EndDate,
		usageLimit:    params.UsageLimit,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// CheckEligibility returns the first rule the order breaks, or nil.
func (p *Promotion) CheckEligibility(subtotal decimal.Decimal, now time.Time) error {
	if !p.isActive {
		return ErrPromotionInactive
	}
	if p.startDate != nil && now.Before(*p.startDate) {
		return ErrNotStarted
	}
	if p.endDate != nil && now.After(*p.endDate) {
		return ErrExpired
	}
	if subtotal.LessThan(p.minPurchase) {
		return fmt.Errorf("minimum %s: %w", p.minPurchase.StringFixed(0), ErrMinimumNotMet)
	}
	if p.usageLimit > 0 && p.usedCount >= p.usageLimit {
		return ErrUsageExhausted
	}
	return nil
}

// CalculateDiscount returns the discount for subtotal, rounded to whole dong
// and never larger than subtotal.
func (p *Promotion) CalculateDiscount(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch p.discountType {
	case DiscountTypePercentage:
		discount = subtotal.Mul(p.discountValue).Div(hundred).Round(0)
		if p.maxDiscount.IsPositive() && discount.GreaterThan(p.maxDiscount) {
			discount = p.maxDiscount
		}
	case DiscountTypeFixed:
		discount = p.discountValue
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

func (p *Promotion) ID() string {
	return p.id
}

func (p *Promotion) Code() string {
	return p.code
}

func (p *Promotion) Description() string {
	return p.description
}

func (p *Promotion) DiscountType() DiscountType {
	return p.discountType
}

func (p *Promotion) DiscountValue() decimal.Decimal {
	return p.discountValue
}

func (p *Promotion) MinPurchase() decimal.Decimal {
	return p.minPurchase
}

func (p *Promotion) MaxDiscount() decimal.Decimal {
	return p.maxDiscount
}

func (p *Promotion) StartDate() *time.Time {
	return p.startDate
}

func (p *Promotion) EndDate() *time.Time {
	return p.endDate
}

func (p *Promotion) UsageLimit() int {
	return p.usageLimit
}

func (p *Promotion) UsedCount() int {
	return p.usedCount
}

func (p *Promotion) IsActive() bool {
	return p.isActive
}

func (p *Promotion) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Promotion) UpdatedAt() time.Time {
	return p.updatedAt
}

type PromotionReconstructParams struct {
	ID            string
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinPurchase   decimal.Decimal
	MaxDiscount   decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	UsageLimit    int
	UsedCount     int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructPromotion(params PromotionReconstructParams) *Promotion {
	return &Promotion{
		id:            params.ID,
		code:          params.Code,
		description:   params.Description,
		discountType:  params.DiscountType,
		discountValue: params.DiscountValue,
		minPurchase:   params.MinPurchase,
		maxDiscount:   params.MaxDiscount,
		startDate:     params.StartDate,
		endDate:       params.EndDate,
		usageLimit:    params.UsageLimit,
		usedCount:     params.UsedCount,
		isActive:      params.IsActive,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}
