package valueobjects

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// gatewayScale is the factor VNPay applies to amounts on the wire.
var gatewayScale = decimal.NewFromInt(100)

// Money is an amount in whole currency units (VND has no minor unit in
// practice, but prices are stored with two decimals).
type Money struct {
	amount   decimal.Decimal
	currency string
}

func NewMoney(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = "VND"
	}
	return Money{
		amount:   amount,
		currency: currency,
	}
}

// NewMoneyFromScaled reverses ScaledAmount.
func NewMoneyFromScaled(scaled int64, currency string) Money {
	return NewMoney(decimal.NewFromInt(scaled).Div(gatewayScale), currency)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// ScaledAmount is the amount multiplied by 100 and rounded half away from
// zero to an integer, the form sent as vnp_Amount.
func (m Money) ScaledAmount() int64 {
	return m.amount.Mul(gatewayScale).Round(0).IntPart()
}

func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount) && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.ScaledAmount() > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(0), m.currency)
}
