package valueobjects

import "fmt"

type PaymentMethod string

const (
	PaymentMethodCOD   PaymentMethod = "cod"
	PaymentMethodVNPay PaymentMethod = "vnpay"
)

// NewPaymentMethod defaults an empty method to cash on delivery.
func NewPaymentMethod(method string) (PaymentMethod, error) {
	if method == "" {
		return PaymentMethodCOD, nil
	}
	pm := PaymentMethod(method)
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", method)
	}
	return pm, nil
}

func (pm PaymentMethod) IsValid() bool {
	return pm == PaymentMethodCOD || pm == PaymentMethodVNPay
}

func (pm PaymentMethod) IsCOD() bool {
	return pm == PaymentMethodCOD
}

func (pm PaymentMethod) IsOnline() bool {
	return pm == PaymentMethodVNPay
}

func (pm PaymentMethod) String() string {
	return string(pm)
}
