package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, f Factory) string {
	t.Helper()

	rec := httptest.NewRecorder()
	f.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPaymentMetrics_Exposed(t *testing.T) {
	f := NewFactory()

	f.Payment().PaymentCreated()
	f.Payment().CallbackHandled("ipn", "paid", 20*time.Millisecond)
	f.Payment().CallbackHandled("ipn", "duplicate", time.Millisecond)
	f.Payment().PaymentsExpired(3)
	f.Payment().PaymentsExpired(0)

	out := scrape(t, f)
	assert.Contains(t, out, "storefront_payments_created_total 1")
	assert.Contains(t, out, `storefront_payment_callbacks_total{outcome="paid",source="ipn"} 1`)
	assert.Contains(t, out, `storefront_payment_callbacks_total{outcome="duplicate",source="ipn"} 1`)
	assert.Contains(t, out, "storefront_payments_expired_total 3")
	assert.Contains(t, out, "storefront_payment_callback_duration_seconds_count{source=\"ipn\"} 2")
}

func TestHTTPMetrics_StatusClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{302, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusClass(tt.status), "status %d", tt.status)
	}

	f := NewFactory()
	f.HTTP().Request(http.MethodGet, "/api/vnpay/ipn", 200, time.Millisecond)

	assert.Contains(t, scrape(t, f), `storefront_http_requests_total{method="GET",path="/api/vnpay/ipn",status="2xx"} 1`)
}
