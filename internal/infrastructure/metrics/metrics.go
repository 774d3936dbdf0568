// Package metrics exposes Prometheus collectors for HTTP traffic and the
// VNPay payment flow.
package metrics

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Payment() Payment
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
	}

	// Payment matches the recorder the payment use cases accept.
	Payment interface {
		PaymentCreated()
		CallbackHandled(source, outcome string, duration time.Duration)
		PaymentsExpired(count int)
	}
)
