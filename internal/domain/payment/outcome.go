package payment

import vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"

// ResponseCodeSuccess is the only gateway response code that means the money moved.
const ResponseCodeSuccess = "00"

// StatusForResponseCode maps a verified gateway response code to the terminal
// status it produces. Every code other than success is a failure.
func StatusForResponseCode(code string) vo.PaymentStatus {
	if code == ResponseCodeSuccess {
		return vo.PaymentStatusPaid
	}
	return vo.PaymentStatusFailed
}
