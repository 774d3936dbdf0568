package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	paymentUsecases "github.com/localshop/storefront/internal/application/payment/usecases"
	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreatePaymentUC struct {
	result *paymentUsecases.CreatePaymentResult
	err    error
	gotCmd paymentUsecases.CreatePaymentCommand
}

func (m *mockCreatePaymentUC) Execute(ctx context.Context, cmd paymentUsecases.CreatePaymentCommand) (*paymentUsecases.CreatePaymentResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockHandleCallbackUC struct {
	result *paymentUsecases.HandlePaymentCallbackResult
	err    error
	gotCmd paymentUsecases.HandlePaymentCallbackCommand
}

func (m *mockHandleCallbackUC) Execute(ctx context.Context, cmd paymentUsecases.HandlePaymentCallbackCommand) (*paymentUsecases.HandlePaymentCallbackResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

const testFrontendURL = "http://shop.test"

func newTestPaymentHandler(createUC *mockCreatePaymentUC, callbackUC *mockHandleCallbackUC) *PaymentHandler {
	if createUC == nil {
		createUC = &mockCreatePaymentUC{}
	}
	if callbackUC == nil {
		callbackUC = &mockHandleCallbackUC{}
	}
	return NewPaymentHandler(createUC, callbackUC, testFrontendURL+"/", testutil.NewMockLogger())
}

// =====================================================================
// CreateVNPayPayment
// =====================================================================

func TestPaymentHandler_CreateVNPayPayment_Success(t *testing.T) {
	expires := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)
	createUC := &mockCreatePaymentUC{
		result: &paymentUsecases.CreatePaymentResult{
			PaymentURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=ORDER_1",
			TxnRef:     "ORDER_1",
			ExpiresAt:  expires,
		},
	}
	handler := newTestPaymentHandler(createUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/vnpay", CreateVNPayPaymentRequest{OrderID: "order-1"})
	handler.CreateVNPayPayment(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "order-1", createUC.gotCmd.OrderID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data CreateVNPayPaymentResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "ORDER_1", data.TxnRef)
	assert.Contains(t, data.PaymentURL, "vnp_TxnRef=ORDER_1")
	assert.True(t, data.ExpiresAt.Equal(expires))
}

func TestPaymentHandler_CreateVNPayPayment_MissingOrderID(t *testing.T) {
	createUC := &mockCreatePaymentUC{}
	handler := newTestPaymentHandler(createUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/vnpay", map[string]string{})
	handler.CreateVNPayPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, createUC.gotCmd.OrderID)
}

func TestPaymentHandler_CreateVNPayPayment_OrderNotPayable(t *testing.T) {
	createUC := &mockCreatePaymentUC{err: apperrors.NewConflictError("order is not payable")}
	handler := newTestPaymentHandler(createUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/vnpay", CreateVNPayPaymentRequest{OrderID: "order-1"})
	handler.CreateVNPayPayment(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

// =====================================================================
// VNPayIPN
// =====================================================================

func TestPaymentHandler_VNPayIPN_Acknowledgements(t *testing.T) {
	tests := []struct {
		name       string
		result     *paymentUsecases.HandlePaymentCallbackResult
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "paid",
			result:     &paymentUsecases.HandlePaymentCallbackResult{Status: vo.PaymentStatusPaid},
			wantStatus: http.StatusOK,
			wantCode:   "00",
		},
		{
			name:       "failed payment is still confirmed",
			result:     &paymentUsecases.HandlePaymentCallbackResult{Status: vo.PaymentStatusFailed},
			wantStatus: http.StatusOK,
			wantCode:   "00",
		},
		{
			name:       "duplicate",
			result:     &paymentUsecases.HandlePaymentCallbackResult{Status: vo.PaymentStatusPaid, AlreadyProcessed: true},
			wantStatus: http.StatusOK,
			wantCode:   "02",
		},
		{
			name:       "bad signature",
			err:        apperrors.NewValidationError("invalid payment callback").WithCause(paymentgateway.ErrInvalidSignature),
			wantStatus: http.StatusBadRequest,
			wantCode:   "97",
		},
		{
			name:       "malformed callback",
			err:        apperrors.NewValidationError("invalid payment callback").WithCause(paymentgateway.ErrMalformedCallback),
			wantStatus: http.StatusBadRequest,
			wantCode:   "97",
		},
		{
			name:       "unknown txn ref",
			err:        apperrors.NewNotFoundError("payment not found").WithCause(payment.ErrPaymentNotFound),
			wantStatus: http.StatusOK,
			wantCode:   "01",
		},
		{
			name:       "amount mismatch",
			err:        apperrors.NewValidationError("amount mismatch").WithCause(payment.ErrAmountMismatch),
			wantStatus: http.StatusOK,
			wantCode:   "04",
		},
		{
			name:       "storage failure",
			err:        apperrors.NewInternalError("failed").WithCause(errors.New("db down")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			callbackUC := &mockHandleCallbackUC{result: tt.result, err: tt.err}
			handler := newTestPaymentHandler(nil, callbackUC)

			c, w := testutil.NewTestContext(http.MethodGet, "/api/vnpay/ipn?vnp_TxnRef=ORDER_1&vnp_ResponseCode=00", nil)
			handler.VNPayIPN(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body IPNResponse
			require.NoError(t, testutil.ParseResponse(w, &body))
			assert.Equal(t, tt.wantCode, body.RspCode)
			assert.NotEmpty(t, body.Message)

			assert.Equal(t, paymentUsecases.SourceIPN, callbackUC.gotCmd.Source)
			assert.Equal(t, "ORDER_1", callbackUC.gotCmd.Params.Get("vnp_TxnRef"))
		})
	}
}

// =====================================================================
// VNPayReturn
// =====================================================================

func TestPaymentHandler_VNPayReturn_PaidRedirectsToOrderSuccess(t *testing.T) {
	callbackUC := &mockHandleCallbackUC{
		result: &paymentUsecases.HandlePaymentCallbackResult{OrderID: "order 1", Status: vo.PaymentStatusPaid},
	}
	handler := newTestPaymentHandler(nil, callbackUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/payment/vnpay-return?vnp_TxnRef=ORDER_1", nil)
	handler.VNPayReturn(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontendURL+"/order-success?orderId=order+1", w.Header().Get("Location"))
	assert.Equal(t, paymentUsecases.SourceReturn, callbackUC.gotCmd.Source)
}

func TestPaymentHandler_VNPayReturn_DuplicatePaidStillSucceeds(t *testing.T) {
	callbackUC := &mockHandleCallbackUC{
		result: &paymentUsecases.HandlePaymentCallbackResult{
			OrderID:          "order-1",
			Status:           vo.PaymentStatusPaid,
			AlreadyProcessed: true,
		},
	}
	handler := newTestPaymentHandler(nil, callbackUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/payment/vnpay-return", nil)
	handler.VNPayReturn(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontendURL+"/order-success?orderId=order-1", w.Header().Get("Location"))
}

func TestPaymentHandler_VNPayReturn_FailedRedirectsWithMessage(t *testing.T) {
	callbackUC := &mockHandleCallbackUC{
		result: &paymentUsecases.HandlePaymentCallbackResult{
			OrderID: "order-1",
			Status:  vo.PaymentStatusFailed,
			Message: "Giao dịch không thành công do: Khách hàng hủy giao dịch",
		},
	}
	handler := newTestPaymentHandler(nil, callbackUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/payment/vnpay-return", nil)
	handler.VNPayReturn(c)

	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/payment-result", loc.Path)
	assert.Equal(t, "failed", loc.Query().Get("status"))
	assert.Equal(t, "Giao dịch không thành công do: Khách hàng hủy giao dịch", loc.Query().Get("message"))
}

func TestPaymentHandler_VNPayReturn_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"signature", apperrors.NewValidationError("x").WithCause(paymentgateway.ErrInvalidSignature), "Chữ ký không hợp lệ"},
		{"not found", apperrors.NewNotFoundError("x").WithCause(payment.ErrPaymentNotFound), "Không tìm thấy giao dịch"},
		{"amount", apperrors.NewValidationError("x").WithCause(payment.ErrAmountMismatch), "Số tiền thanh toán không khớp"},
		{"internal", errors.New("boom"), "Có lỗi xảy ra khi xử lý thanh toán"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestPaymentHandler(nil, &mockHandleCallbackUC{err: tt.err})

			c, w := testutil.NewTestContext(http.MethodGet, "/payment/vnpay-return", nil)
			handler.VNPayReturn(c)

			require.Equal(t, http.StatusFound, w.Code)
			loc, err := url.Parse(w.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "failed", loc.Query().Get("status"))
			assert.Equal(t, tt.want, loc.Query().Get("message"))
		})
	}
}
