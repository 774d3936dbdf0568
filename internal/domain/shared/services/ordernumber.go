package services

import (
	"fmt"

	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

// OrderNumberGenerator produces the human-facing order number printed on
// receipts and sent to the gateway as part of vnp_OrderInfo.
type OrderNumberGenerator interface {
	Generate(prefix string) (string, error)
}

type DefaultOrderNumberGenerator struct{}

func NewOrderNumberGenerator() OrderNumberGenerator {
	return &DefaultOrderNumberGenerator{}
}

// Generate returns prefix + yyyyMMddHHmmss (business timezone) + six random digits.
func (g *DefaultOrderNumberGenerator) Generate(prefix string) (string, error) {
	suffix, err := id.GenerateDigits(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return prefix + biztime.FormatInBizTimezone(biztime.NowUTC(), "20060102150405") + suffix, nil
}
