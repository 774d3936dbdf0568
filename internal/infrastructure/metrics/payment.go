package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Payment = (*paymentMetrics)(nil)

type paymentMetrics struct {
	created         prometheus.Counter
	callbacks       *prometheus.CounterVec
	callbackLatency *prometheus.HistogramVec
	expired         prometheus.Counter
}

func newPaymentMetrics(registry *prometheus.Registry) *paymentMetrics {
	created := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_created_total",
			Help:      "Total number of VNPay payment requests issued",
		},
	)

	callbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_callbacks_total",
			Help:      "Total number of gateway callbacks by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_callback_duration_seconds",
			Help:      "Time spent verifying and settling a gateway callback",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"source"},
	)

	expired := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_expired_total",
			Help:      "Total number of pending payments moved to expired by the sweep",
		},
	)

	registry.MustRegister(created, callbacks, latency, expired)

	return &paymentMetrics{
		created:         created,
		callbacks:       callbacks,
		callbackLatency: latency,
		expired:         expired,
	}
}

func (m *paymentMetrics) PaymentCreated() {
	m.created.Inc()
}

func (m *paymentMetrics) CallbackHandled(source, outcome string, duration time.Duration) {
	m.callbacks.WithLabelValues(source, outcome).Inc()
	m.callbackLatency.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *paymentMetrics) PaymentsExpired(count int) {
	if count > 0 {
		m.expired.Add(float64(count))
	}
}
