package usecases

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	"github.com/localshop/storefront/internal/domain/order"
	orderVO "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/shared/db"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/goroutine"
	"github.com/localshop/storefront/internal/shared/logger"
)

// Callback sources, used for logging and metrics.
const (
	SourceIPN    = "ipn"
	SourceReturn = "return"
)

// Outcome labels.
const (
	OutcomePaid           = "paid"
	OutcomeFailed         = "failed"
	OutcomeDuplicate      = "duplicate"
	OutcomeRejected       = "rejected"
	OutcomeNotFound       = "not_found"
	OutcomeAmountMismatch = "amount_mismatch"
	OutcomeError          = "error"
)

const notifyTimeout = 30 * time.Second

type HandlePaymentCallbackCommand struct {
	Source string
	Params url.Values
}

type HandlePaymentCallbackResult struct {
	OrderID string
	TxnRef  string
	// Status is the transaction status after handling, including when the
	// callback was a duplicate.
	Status           vo.PaymentStatus
	ResponseCode     string
	Message          string
	AlreadyProcessed bool
}

type HandlePaymentCallbackUseCase struct {
	paymentRepo payment.PaymentRepository
	historyRepo payment.HistoryRepository
	orderRepo   order.Repository
	txManager   db.Transactor
	gateway     paymentgateway.PaymentGateway
	notifier    OrderPaidNotifier // Optional
	metrics     PaymentMetrics
	logger      logger.Interface
}

func NewHandlePaymentCallbackUseCase(
	paymentRepo payment.PaymentRepository,
	historyRepo payment.HistoryRepository,
	orderRepo order.Repository,
	txManager db.Transactor,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *HandlePaymentCallbackUseCase {
	return &HandlePaymentCallbackUseCase{
		paymentRepo: paymentRepo,
		historyRepo: historyRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
		gateway:     gateway,
		metrics:     nopMetrics{},
		logger:      logger,
	}
}

// SetNotifier sets the order paid notifier (optional dependency injection)
func (uc *HandlePaymentCallbackUseCase) SetNotifier(notifier OrderPaidNotifier) {
	uc.notifier = notifier
}

// SetMetrics sets the metrics recorder (optional dependency injection)
func (uc *HandlePaymentCallbackUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

// Execute verifies a gateway callback and settles the matching transaction.
// A duplicate callback returns a result with AlreadyProcessed set and no error.
// Errors are AppErrors whose cause is one of paymentgateway.ErrInvalidSignature,
// paymentgateway.ErrMalformedCallback, payment.ErrPaymentNotFound,
// payment.ErrAmountMismatch or a persistence failure.
func (uc *HandlePaymentCallbackUseCase) Execute(ctx context.Context, cmd HandlePaymentCallbackCommand) (*HandlePaymentCallbackResult, error) {
	start := time.Now()
	result, outcome, err := uc.handle(ctx, cmd)
	uc.metrics.CallbackHandled(cmd.Source, outcome, time.Since(start))
	return result, err
}

func (uc *HandlePaymentCallbackUseCase) handle(ctx context.Context, cmd HandlePaymentCallbackCommand) (*HandlePaymentCallbackResult, string, error) {
	callbackData, err := uc.gateway.VerifyCallback(cmd.Params)
	if err != nil {
		if errors.Is(err, paymentgateway.ErrInvalidSignature) {
			return nil, OutcomeRejected, apperrors.NewValidationError("invalid payment callback").WithCause(err)
		}
		uc.logger.Warnw("malformed payment callback", "source", cmd.Source, "error", err)
		return nil, OutcomeRejected, apperrors.NewValidationError("invalid payment callback").WithCause(err)
	}

	paymentOrder, err := uc.paymentRepo.GetByTxnRef(ctx, callbackData.TxnRef)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			uc.logger.Warnw("payment not found for callback", "source", cmd.Source, "txn_ref", callbackData.TxnRef)
			return nil, OutcomeNotFound, apperrors.NewNotFoundError("payment not found").WithCause(err)
		}
		uc.logger.Errorw("failed to get payment", "error", err, "txn_ref", callbackData.TxnRef)
		return nil, OutcomeError, apperrors.NewInternalError("failed to process payment callback").WithCause(err)
	}

	// Only paid and failed short-circuit. An expired attempt still settles,
	// since the gateway may deliver or retry after the sweep.
	if paymentOrder.Status().IsFinal() {
		uc.logger.Infow("payment already processed",
			"source", cmd.Source,
			"txn_ref", paymentOrder.TxnRef(),
			"status", paymentOrder.Status(),
		)
		return uc.duplicateResult(paymentOrder, callbackData), OutcomeDuplicate, nil
	}

	if err := paymentOrder.ValidateCallbackAmount(callbackData.Amount); err != nil {
		uc.logger.Errorw("callback amount mismatch",
			"txn_ref", paymentOrder.TxnRef(),
			"expected_amount", paymentOrder.Amount().ScaledAmount(),
			"callback_amount", callbackData.Amount,
		)
		return nil, OutcomeAmountMismatch, apperrors.NewValidationError("payment amount mismatch").WithCause(err)
	}

	if paymentOrder.Status() == vo.PaymentStatusExpired {
		uc.logger.Warnw("settling expired payment from late callback",
			"source", cmd.Source,
			"txn_ref", paymentOrder.TxnRef(),
			"response_code", callbackData.ResponseCode,
		)
	}

	if callbackData.IsSuccess() {
		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.settlePaid(txCtx, paymentOrder, callbackData)
		})
	} else {
		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.settleFailed(txCtx, paymentOrder, callbackData)
		})
	}

	if errors.Is(err, payment.ErrAlreadyResolved) {
		// A concurrent callback won the conditional update.
		current, getErr := uc.paymentRepo.GetByTxnRef(ctx, callbackData.TxnRef)
		if getErr != nil {
			current = paymentOrder
		}
		uc.logger.Infow("payment resolved concurrently", "source", cmd.Source, "txn_ref", callbackData.TxnRef)
		return uc.duplicateResult(current, callbackData), OutcomeDuplicate, nil
	}
	if err != nil {
		uc.logger.Errorw("failed to settle payment",
			"error", err,
			"source", cmd.Source,
			"txn_ref", callbackData.TxnRef,
		)
		return nil, OutcomeError, apperrors.NewInternalError("failed to process payment callback").WithCause(err)
	}

	result := &HandlePaymentCallbackResult{
		OrderID:      paymentOrder.OrderID(),
		TxnRef:       paymentOrder.TxnRef(),
		Status:       paymentOrder.Status(),
		ResponseCode: callbackData.ResponseCode,
		Message:      callbackData.Message,
	}

	if !callbackData.IsSuccess() {
		uc.logger.Infow("payment failed",
			"source", cmd.Source,
			"order_id", paymentOrder.OrderID(),
			"txn_ref", paymentOrder.TxnRef(),
			"response_code", callbackData.ResponseCode,
		)
		return result, OutcomeFailed, nil
	}

	uc.logger.Infow("payment processed successfully",
		"source", cmd.Source,
		"order_id", paymentOrder.OrderID(),
		"txn_ref", paymentOrder.TxnRef(),
		"transaction_no", callbackData.TransactionNo,
	)
	uc.notifyPaid(ctx, paymentOrder, callbackData)

	return result, OutcomePaid, nil
}

func (uc *HandlePaymentCallbackUseCase) settlePaid(ctx context.Context, p *payment.Payment, data *paymentgateway.CallbackData) error {
	if err := p.MarkAsPaid(data.TransactionNo, data.BankCode, data.PaidAt); err != nil {
		return err
	}

	resolved, err := uc.paymentRepo.Resolve(ctx, p)
	if err != nil {
		return err
	}
	if !resolved {
		return payment.ErrAlreadyResolved
	}

	marked, err := uc.orderRepo.MarkPaid(ctx, p.OrderID(), order.PaymentDetails{
		TxnRef:        p.TxnRef(),
		TransactionNo: data.TransactionNo,
		BankCode:      data.BankCode,
		PaymentDate:   data.PaidAt,
	})
	if err != nil {
		return err
	}
	if !marked {
		uc.logger.Warnw("order was already paid by another transaction",
			"order_id", p.OrderID(),
			"txn_ref", p.TxnRef(),
		)
	} else if err := uc.flagCancelledOrder(ctx, p, data); err != nil {
		return err
	}

	return uc.historyRepo.Create(ctx, payment.NewPaidHistory(p, data.RawData))
}

// flagCancelledOrder logs a paid order that an admin had already cancelled.
// The order keeps its cancelled status and needs a manual refund.
func (uc *HandlePaymentCallbackUseCase) flagCancelledOrder(ctx context.Context, p *payment.Payment, data *paymentgateway.CallbackData) error {
	ord, err := uc.orderRepo.GetByID(ctx, p.OrderID())
	if err != nil {
		return err
	}
	if ord.Status() == orderVO.OrderStatusCancelled {
		uc.logger.Warnw("payment received for cancelled order, refund required",
			"order_id", ord.ID(),
			"order_number", ord.OrderNumber(),
			"txn_ref", p.TxnRef(),
			"transaction_no", data.TransactionNo,
			"amount", p.Amount().Amount().String(),
		)
	}
	return nil
}

func (uc *HandlePaymentCallbackUseCase) settleFailed(ctx context.Context, p *payment.Payment, data *paymentgateway.CallbackData) error {
	if err := p.MarkAsFailed(data.ResponseCode); err != nil {
		return err
	}

	resolved, err := uc.paymentRepo.Resolve(ctx, p)
	if err != nil {
		return err
	}
	if !resolved {
		return payment.ErrAlreadyResolved
	}

	if _, err := uc.orderRepo.MarkPaymentFailed(ctx, p.OrderID()); err != nil {
		return err
	}
	return nil
}

func (uc *HandlePaymentCallbackUseCase) duplicateResult(p *payment.Payment, data *paymentgateway.CallbackData) *HandlePaymentCallbackResult {
	return &HandlePaymentCallbackResult{
		OrderID:          p.OrderID(),
		TxnRef:           p.TxnRef(),
		Status:           p.Status(),
		ResponseCode:     data.ResponseCode,
		Message:          data.Message,
		AlreadyProcessed: true,
	}
}

func (uc *HandlePaymentCallbackUseCase) notifyPaid(ctx context.Context, p *payment.Payment, data *paymentgateway.CallbackData) {
	if uc.notifier == nil {
		return
	}

	goroutine.Detach(ctx, uc.logger, "payment-callback-notify-customer", notifyTimeout, func(ctx context.Context) {
		ord, err := uc.orderRepo.GetByID(ctx, p.OrderID())
		if err != nil {
			uc.logger.Warnw("failed to load order for notification", "order_id", p.OrderID(), "error", err)
			return
		}
		if ord.Customer().Email == "" || ord.Status() == orderVO.OrderStatusCancelled {
			return
		}

		cmd := OrderPaidNotification{
			OrderID:       ord.ID(),
			OrderNumber:   ord.OrderNumber(),
			CustomerName:  ord.Customer().Name,
			CustomerEmail: ord.Customer().Email,
			Amount:        p.Amount().Amount(),
			TxnRef:        p.TxnRef(),
			TransactionNo: data.TransactionNo,
			PaidAt:        data.PaidAt,
		}
		if err := uc.notifier.NotifyOrderPaid(ctx, cmd); err != nil {
			uc.logger.Warnw("failed to send order paid notification", "order_id", ord.ID(), "error", err)
		}
	})
}
