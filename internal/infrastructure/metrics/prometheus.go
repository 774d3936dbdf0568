package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

var _ Factory = (*prometheusFactory)(nil)

type prometheusFactory struct {
	registry *prometheus.Registry
	http     *httpMetrics
	payment  *paymentMetrics
}

func NewFactory() Factory {
	registry := newRegistry()

	return &prometheusFactory{
		registry: registry,
		http:     newHTTPMetrics(registry),
		payment:  newPaymentMetrics(registry),
	}
}

func (f *prometheusFactory) HTTP() HTTP {
	return f.http
}

func (f *prometheusFactory) Payment() Payment {
	return f.payment
}

func (f *prometheusFactory) Handler() http.Handler {
	return promhttp.HandlerFor(f.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		})
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}
