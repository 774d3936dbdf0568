package usecases

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	"github.com/localshop/storefront/internal/domain/order"
	orderVO "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/shared/biztime"
)

type fakePaymentRepo struct {
	mu         sync.Mutex
	payments   map[string]payment.Payment
	createErr  error
	resolveErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]payment.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.TxnRef()] = *p
	return nil
}

func (r *fakePaymentRepo) GetByTxnRef(_ context.Context, txnRef string) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[txnRef]
	if !ok {
		return nil, payment.ErrPaymentNotFound
	}
	return &p, nil
}

func (r *fakePaymentRepo) GetActiveByOrderID(_ context.Context, orderID string, now time.Time) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.OrderID() == orderID && p.Status().IsPending() && p.ExpiredAt().After(now) {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) Resolve(_ context.Context, p *payment.Payment) (bool, error) {
	if r.resolveErr != nil {
		return false, r.resolveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.payments[p.TxnRef()]
	if !ok || !stored.Status().CanTransitionTo(p.Status()) {
		return false, nil
	}
	r.payments[p.TxnRef()] = *p
	return true, nil
}

func (r *fakePaymentRepo) GetExpiredPending(_ context.Context, now time.Time, limit int) ([]*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*payment.Payment
	for _, p := range r.payments {
		if p.IsExpired(now) && len(out) < limit {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) status(txnRef string) vo.PaymentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.payments[txnRef]
	return p.Status()
}

type fakeHistoryRepo struct {
	mu        sync.Mutex
	entries   []*payment.History
	createErr error
}

func (r *fakeHistoryRepo) Create(_ context.Context, entry *payment.History) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeHistoryRepo) ListByOrderID(_ context.Context, orderID string) ([]*payment.History, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*payment.History
	for _, e := range r.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]order.OrderReconstructParams
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]order.OrderReconstructParams)}
}

func (r *fakeOrderRepo) add(params order.OrderReconstructParams) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[params.ID] = params
}

func (r *fakeOrderRepo) get(id string) order.OrderReconstructParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[id]
}

func (r *fakeOrderRepo) Create(context.Context, *order.Order) error {
	return errors.New("not implemented")
}

func (r *fakeOrderRepo) CreateItems(context.Context, string, []*order.OrderItem) error {
	return errors.New("not implemented")
}

func (r *fakeOrderRepo) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	params, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return order.ReconstructOrderWithParams(params), nil
}

func (r *fakeOrderRepo) ListByUserID(context.Context, string, int, int) ([]*order.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) UpdateStatus(context.Context, *order.Order) error {
	return errors.New("not implemented")
}

func (r *fakeOrderRepo) MarkPaid(_ context.Context, id string, details order.PaymentDetails) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	params, ok := r.orders[id]
	if !ok || params.PaymentStatus == orderVO.PaymentStatusPaid {
		return false, nil
	}
	params.PaymentStatus = orderVO.PaymentStatusPaid
	if params.Status != orderVO.OrderStatusCancelled {
		params.Status = orderVO.OrderStatusProcessing
	}
	params.PaymentDetails = &details
	r.orders[id] = params
	return true, nil
}

func (r *fakeOrderRepo) MarkPaymentFailed(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	params, ok := r.orders[id]
	if !ok || params.PaymentStatus != orderVO.PaymentStatusPending {
		return false, nil
	}
	params.PaymentStatus = orderVO.PaymentStatusFailed
	r.orders[id] = params
	return true, nil
}

// fakeTransactor runs fn directly; the fakes above have no rollback.
type fakeTransactor struct{}

func (fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGateway struct {
	createResp *paymentgateway.CreatePaymentResponse
	createErr  error
	calls      int
	callback   *paymentgateway.CallbackData
	verifyErr  error
}

func (g *fakeGateway) CreatePayment(_ context.Context, req paymentgateway.CreatePaymentRequest) (*paymentgateway.CreatePaymentResponse, error) {
	g.calls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	resp := *g.createResp
	resp.ScaledAmount = req.Amount.ScaledAmount()
	return &resp, nil
}

func (g *fakeGateway) VerifyCallback(url.Values) (*paymentgateway.CallbackData, error) {
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return g.callback, nil
}

type fakeNotifier struct {
	sent chan OrderPaidNotification
}

func (n *fakeNotifier) NotifyOrderPaid(_ context.Context, cmd OrderPaidNotification) error {
	n.sent <- cmd
	return nil
}

type recordingMetrics struct {
	mu       sync.Mutex
	created  int
	outcomes []string
	expired  int
}

func (m *recordingMetrics) PaymentCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *recordingMetrics) CallbackHandled(_, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) PaymentsExpired(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expired += count
}

func pendingOrder(id string, method orderVO.PaymentMethod, total int64) order.OrderReconstructParams {
	now := biztime.NowUTC()
	return order.OrderReconstructParams{
		ID:          id,
		OrderNumber: "DH20231115051320123456",
		Customer: order.Customer{
			Name:    "Nguyễn Văn A",
			Email:   "a@example.com",
			Phone:   "0901234567",
			Address: "1 Lê Lợi, Quận 1",
		},
		Subtotal:       decimal.NewFromInt(total),
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.NewFromInt(total),
		PaymentMethod:  method,
		PaymentStatus:  orderVO.PaymentStatusPending,
		Status:         orderVO.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func pendingPayment(orderID, txnRef string, amount int64, expiresAt time.Time) *payment.Payment {
	now := biztime.NowUTC()
	return payment.ReconstructPaymentWithParams(payment.PaymentReconstructParams{
		ID:        "pay-" + txnRef,
		TxnRef:    txnRef,
		OrderID:   orderID,
		Amount:    vo.NewMoney(decimal.NewFromInt(amount), "VND"),
		Status:    vo.PaymentStatusPending,
		ExpiredAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
