package usecases

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	orderVO "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

const (
	testOrderID = "order-1"
	testTxnRef  = "ORDER_1700000000000"
)

type callbackFixture struct {
	payments *fakePaymentRepo
	history  *fakeHistoryRepo
	orders   *fakeOrderRepo
	gateway  *fakeGateway
	metrics  *recordingMetrics
	uc       *HandlePaymentCallbackUseCase
}

func newCallbackFixture(t *testing.T, responseCode string) *callbackFixture {
	t.Helper()

	f := &callbackFixture{
		payments: newFakePaymentRepo(),
		history:  &fakeHistoryRepo{},
		orders:   newFakeOrderRepo(),
		metrics:  &recordingMetrics{},
	}
	f.orders.add(pendingOrder(testOrderID, orderVO.PaymentMethodVNPay, 150000))
	require.NoError(t, f.payments.Create(context.Background(),
		pendingPayment(testOrderID, testTxnRef, 150000, time.Now().Add(15*time.Minute))))

	f.gateway = &fakeGateway{callback: &paymentgateway.CallbackData{
		TxnRef:        testTxnRef,
		TransactionNo: "14123456",
		Amount:        15000000,
		ResponseCode:  responseCode,
		BankCode:      "NCB",
		PaidAt:        time.Date(2023, 11, 14, 22, 20, 0, 0, time.UTC),
		Message:       "message",
		RawData:       map[string]string{"vnp_TxnRef": testTxnRef, "vnp_ResponseCode": responseCode},
	}}

	f.uc = NewHandlePaymentCallbackUseCase(f.payments, f.history, f.orders, fakeTransactor{}, f.gateway, logger.NewNopLogger())
	f.uc.SetMetrics(f.metrics)
	return f
}

func (f *callbackFixture) execute() (*HandlePaymentCallbackResult, error) {
	return f.uc.Execute(context.Background(), HandlePaymentCallbackCommand{
		Source: SourceIPN,
		Params: url.Values{},
	})
}

func TestHandlePaymentCallback_Success(t *testing.T) {
	f := newCallbackFixture(t, "00")
	notifier := &fakeNotifier{sent: make(chan OrderPaidNotification, 1)}
	f.uc.SetNotifier(notifier)

	result, err := f.execute()
	require.NoError(t, err)

	assert.False(t, result.AlreadyProcessed)
	assert.Equal(t, vo.PaymentStatusPaid, result.Status)
	assert.Equal(t, testOrderID, result.OrderID)

	ord := f.orders.get(testOrderID)
	assert.Equal(t, orderVO.PaymentStatusPaid, ord.PaymentStatus)
	assert.Equal(t, orderVO.OrderStatusProcessing, ord.Status)
	require.NotNil(t, ord.PaymentDetails)
	assert.Equal(t, "14123456", ord.PaymentDetails.TransactionNo)
	assert.Equal(t, testTxnRef, ord.PaymentDetails.TxnRef)

	assert.Equal(t, vo.PaymentStatusPaid, f.payments.status(testTxnRef))
	require.Equal(t, 1, f.history.count())
	assert.Equal(t, testTxnRef, f.history.entries[0].Details["vnp_TxnRef"])

	select {
	case sent := <-notifier.sent:
		assert.Equal(t, "a@example.com", sent.CustomerEmail)
		assert.Equal(t, "14123456", sent.TransactionNo)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not sent")
	}

	assert.Equal(t, []string{OutcomePaid}, f.metrics.outcomes)
}

func TestHandlePaymentCallback_UserCancelled(t *testing.T) {
	f := newCallbackFixture(t, "24")

	result, err := f.execute()
	require.NoError(t, err)

	assert.Equal(t, vo.PaymentStatusFailed, result.Status)
	ord := f.orders.get(testOrderID)
	assert.Equal(t, orderVO.PaymentStatusFailed, ord.PaymentStatus)
	assert.Equal(t, orderVO.OrderStatusPending, ord.Status)
	assert.Equal(t, 0, f.history.count())
	assert.Equal(t, []string{OutcomeFailed}, f.metrics.outcomes)
}

func TestHandlePaymentCallback_ForgedSignature(t *testing.T) {
	f := newCallbackFixture(t, "00")
	f.gateway.verifyErr = paymentgateway.ErrInvalidSignature

	result, err := f.execute()
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, paymentgateway.ErrInvalidSignature))
	assert.True(t, apperrors.IsValidationError(err))

	ord := f.orders.get(testOrderID)
	assert.Equal(t, orderVO.PaymentStatusPending, ord.PaymentStatus)
	assert.Equal(t, orderVO.OrderStatusPending, ord.Status)
	assert.Nil(t, ord.PaymentDetails)
	assert.Equal(t, vo.PaymentStatusPending, f.payments.status(testTxnRef))
	assert.Equal(t, 0, f.history.count())
	assert.Equal(t, []string{OutcomeRejected}, f.metrics.outcomes)
}

func TestHandlePaymentCallback_DuplicateIsNoop(t *testing.T) {
	f := newCallbackFixture(t, "00")

	_, err := f.execute()
	require.NoError(t, err)

	result, err := f.execute()
	require.NoError(t, err)

	assert.True(t, result.AlreadyProcessed)
	assert.Equal(t, vo.PaymentStatusPaid, result.Status)
	assert.Equal(t, 1, f.history.count())
	assert.Equal(t, []string{OutcomePaid, OutcomeDuplicate}, f.metrics.outcomes)
}

func TestHandlePaymentCallback_DuplicateWithDifferentOutcome(t *testing.T) {
	f := newCallbackFixture(t, "24")
	_, err := f.execute()
	require.NoError(t, err)

	f.gateway.callback.ResponseCode = "00"
	result, err := f.execute()
	require.NoError(t, err)

	assert.True(t, result.AlreadyProcessed)
	assert.Equal(t, vo.PaymentStatusFailed, result.Status)
	assert.Equal(t, orderVO.PaymentStatusFailed, f.orders.get(testOrderID).PaymentStatus)
	assert.Equal(t, 0, f.history.count())
}

func TestHandlePaymentCallback_SettlesAfterSweep(t *testing.T) {
	tests := []struct {
		name          string
		responseCode  string
		wantStatus    vo.PaymentStatus
		wantOrderPay  orderVO.PaymentStatus
		wantHistories int
	}{
		{"success after expiry", "00", vo.PaymentStatusPaid, orderVO.PaymentStatusPaid, 1},
		{"failure after expiry", "24", vo.PaymentStatusFailed, orderVO.PaymentStatusFailed, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCallbackFixture(t, tt.responseCode)
			require.NoError(t, f.payments.Create(context.Background(),
				pendingPayment(testOrderID, testTxnRef, 150000, time.Now().Add(-time.Minute))))

			expired, err := NewExpirePaymentsUseCase(f.payments, logger.NewNopLogger()).Execute(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, expired)
			require.Equal(t, vo.PaymentStatusExpired, f.payments.status(testTxnRef))

			result, err := f.execute()
			require.NoError(t, err)

			assert.False(t, result.AlreadyProcessed)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantStatus, f.payments.status(testTxnRef))
			assert.Equal(t, tt.wantOrderPay, f.orders.get(testOrderID).PaymentStatus)
			assert.Equal(t, tt.wantHistories, f.history.count())

			again, err := f.execute()
			require.NoError(t, err)
			assert.True(t, again.AlreadyProcessed)
		})
	}
}

func TestHandlePaymentCallback_CancelledOrderIsNotReopened(t *testing.T) {
	f := newCallbackFixture(t, "00")
	notifier := &fakeNotifier{sent: make(chan OrderPaidNotification, 1)}
	f.uc.SetNotifier(notifier)

	cancelled := f.orders.get(testOrderID)
	cancelled.Status = orderVO.OrderStatusCancelled
	f.orders.add(cancelled)

	result, err := f.execute()
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusPaid, result.Status)

	ord := f.orders.get(testOrderID)
	assert.Equal(t, orderVO.OrderStatusCancelled, ord.Status)
	assert.Equal(t, orderVO.PaymentStatusPaid, ord.PaymentStatus)
	require.NotNil(t, ord.PaymentDetails)
	assert.Equal(t, "14123456", ord.PaymentDetails.TransactionNo)
	assert.Equal(t, 1, f.history.count())

	select {
	case <-notifier.sent:
		t.Fatal("no confirmation email for a cancelled order")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestHandlePaymentCallback_ConcurrentDeliveries(t *testing.T) {
	f := newCallbackFixture(t, "00")

	const deliveries = 8
	var wg sync.WaitGroup
	errs := make(chan error, deliveries)
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.execute()
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, f.history.count())
	assert.Equal(t, orderVO.PaymentStatusPaid, f.orders.get(testOrderID).PaymentStatus)
}

func TestHandlePaymentCallback_AmountMismatch(t *testing.T) {
	f := newCallbackFixture(t, "00")
	f.gateway.callback.Amount = 100

	_, err := f.execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, payment.ErrAmountMismatch))

	assert.Equal(t, vo.PaymentStatusPending, f.payments.status(testTxnRef))
	assert.Equal(t, orderVO.PaymentStatusPending, f.orders.get(testOrderID).PaymentStatus)
	assert.Equal(t, 0, f.history.count())
}

func TestHandlePaymentCallback_UnknownTxnRef(t *testing.T) {
	f := newCallbackFixture(t, "00")
	f.gateway.callback.TxnRef = "ORDER_unknown"

	_, err := f.execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, payment.ErrPaymentNotFound))
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestHandlePaymentCallback_PersistenceFailure(t *testing.T) {
	f := newCallbackFixture(t, "00")
	f.history.createErr = errors.New("connection reset")

	_, err := f.execute()
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.False(t, errors.Is(err, payment.ErrAlreadyResolved))
	assert.Equal(t, []string{OutcomeError}, f.metrics.outcomes)
}
