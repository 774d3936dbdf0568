package usecases

import (
	"context"
	"fmt"

	"github.com/localshop/storefront/internal/domain/payment"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/logger"
)

const expireBatchSize = 100

type ExpirePaymentsUseCase struct {
	paymentRepo payment.PaymentRepository
	metrics     PaymentMetrics
	logger      logger.Interface
}

func NewExpirePaymentsUseCase(
	paymentRepo payment.PaymentRepository,
	logger logger.Interface,
) *ExpirePaymentsUseCase {
	return &ExpirePaymentsUseCase{
		paymentRepo: paymentRepo,
		metrics:     nopMetrics{},
		logger:      logger,
	}
}

// SetMetrics sets the metrics recorder (optional dependency injection)
func (uc *ExpirePaymentsUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

// Execute moves pending transactions past their expiry to expired. The order
// keeps its pending payment status so the customer can start a new attempt.
func (uc *ExpirePaymentsUseCase) Execute(ctx context.Context) (int, error) {
	expiredPayments, err := uc.paymentRepo.GetExpiredPending(ctx, biztime.NowUTC(), expireBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to get expired payments", "error", err)
		return 0, fmt.Errorf("failed to get expired payments: %w", err)
	}

	if len(expiredPayments) == 0 {
		uc.logger.Debugw("no expired payments found")
		return 0, nil
	}

	uc.logger.Infow("processing expired payments", "count", len(expiredPayments))

	expiredCount := 0
	for _, p := range expiredPayments {
		if err := ctx.Err(); err != nil {
			break
		}

		if err := p.MarkAsExpired(); err != nil {
			uc.logger.Errorw("failed to mark payment as expired",
				"error", err,
				"payment_id", p.ID(),
				"txn_ref", p.TxnRef())
			continue
		}

		resolved, err := uc.paymentRepo.Resolve(ctx, p)
		if err != nil {
			uc.logger.Errorw("failed to update expired payment",
				"error", err,
				"payment_id", p.ID(),
				"txn_ref", p.TxnRef())
			continue
		}
		if !resolved {
			uc.logger.Infow("payment resolved before expiry", "txn_ref", p.TxnRef())
			continue
		}

		expiredCount++
		uc.logger.Infow("payment marked as expired",
			"payment_id", p.ID(),
			"txn_ref", p.TxnRef(),
			"order_id", p.OrderID())
	}

	uc.metrics.PaymentsExpired(expiredCount)
	uc.logger.Infow("expired payments processed",
		"total", len(expiredPayments),
		"expired", expiredCount)

	return expiredCount, nil
}
