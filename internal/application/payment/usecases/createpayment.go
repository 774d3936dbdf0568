package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	"github.com/localshop/storefront/internal/domain/order"
	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/constants"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type CreatePaymentCommand struct {
	OrderID  string
	ClientIP string
}

type CreatePaymentResult struct {
	Payment    *payment.Payment
	PaymentURL string
	TxnRef     string
	ExpiresAt  time.Time
	// Reused is true when an open payment for the order was returned
	// instead of creating a new one.
	Reused bool
}

type PaymentConfig struct {
	TTL time.Duration
}

type CreatePaymentUseCase struct {
	paymentRepo payment.PaymentRepository
	orderRepo   order.Repository
	gateway     paymentgateway.PaymentGateway
	metrics     PaymentMetrics
	logger      logger.Interface
	config      PaymentConfig
}

func NewCreatePaymentUseCase(
	paymentRepo payment.PaymentRepository,
	orderRepo order.Repository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
	config PaymentConfig,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		metrics:     nopMetrics{},
		logger:      logger,
		config:      config,
	}
}

// SetMetrics sets the metrics recorder (optional dependency injection)
func (uc *CreatePaymentUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

func (uc *CreatePaymentUseCase) Execute(ctx context.Context, cmd CreatePaymentCommand) (*CreatePaymentResult, error) {
	if cmd.OrderID == "" {
		return nil, apperrors.NewValidationError("order_id is required")
	}

	ord, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order not found").WithCause(err)
		}
		uc.logger.Errorw("failed to get order", "error", err, "order_id", cmd.OrderID)
		return nil, apperrors.NewInternalError("failed to get order").WithCause(err)
	}

	if err := ord.CanStartOnlinePayment(); err != nil {
		return nil, apperrors.NewValidationError("order cannot be paid online", err.Error()).WithCause(err)
	}
	if err := ord.EnsurePayable(); err != nil {
		return nil, apperrors.NewValidationError("order cannot be paid online", err.Error()).WithCause(err)
	}

	now := biztime.NowUTC()

	existing, err := uc.paymentRepo.GetActiveByOrderID(ctx, ord.ID(), now)
	if err != nil {
		uc.logger.Errorw("failed to look up open payment", "error", err, "order_id", ord.ID())
		return nil, apperrors.NewInternalError("failed to create payment").WithCause(err)
	}
	if existing != nil && existing.PaymentURL() != nil {
		uc.logger.Infow("reusing open payment",
			"order_id", ord.ID(),
			"txn_ref", existing.TxnRef(),
		)
		return &CreatePaymentResult{
			Payment:    existing,
			PaymentURL: *existing.PaymentURL(),
			TxnRef:     existing.TxnRef(),
			ExpiresAt:  existing.ExpiredAt(),
			Reused:     true,
		}, nil
	}

	amount := vo.NewMoney(ord.TotalAmount(), constants.Currency)
	expiresAt := now.Add(uc.config.TTL)

	gatewayResp, err := uc.gateway.CreatePayment(ctx, paymentgateway.CreatePaymentRequest{
		OrderID:   ord.ID(),
		Amount:    amount,
		OrderInfo: fmt.Sprintf("Thanh toan don hang %s", ord.OrderNumber()),
		ClientIP:  cmd.ClientIP,
		ExpireAt:  expiresAt,
	})
	if err != nil {
		uc.logger.Errorw("failed to create payment in gateway", "error", err, "order_id", ord.ID())
		return nil, apperrors.NewInternalError("failed to create payment").WithCause(err)
	}

	paymentOrder, err := payment.NewPayment(ord.ID(), gatewayResp.TxnRef, amount, expiresAt)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to create payment", err.Error()).WithCause(err)
	}
	paymentOrder.SetPaymentURL(gatewayResp.PaymentURL)

	// The pending row must exist before the customer is redirected, otherwise
	// a fast callback would find nothing to resolve.
	if err := uc.paymentRepo.Create(ctx, paymentOrder); err != nil {
		uc.logger.Errorw("failed to save payment", "error", err, "order_id", ord.ID(), "txn_ref", gatewayResp.TxnRef)
		return nil, apperrors.NewInternalError("failed to create payment").WithCause(err)
	}

	uc.metrics.PaymentCreated()
	uc.logger.Infow("payment created successfully",
		"payment_id", paymentOrder.ID(),
		"order_id", ord.ID(),
		"txn_ref", paymentOrder.TxnRef(),
		"amount", amount.String(),
	)

	return &CreatePaymentResult{
		Payment:    paymentOrder,
		PaymentURL: gatewayResp.PaymentURL,
		TxnRef:     paymentOrder.TxnRef(),
		ExpiresAt:  expiresAt,
	}, nil
}
