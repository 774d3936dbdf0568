package usecases

import (
	"context"
	"errors"

	"github.com/localshop/storefront/internal/domain/order"
	vo "github.com/localshop/storefront/internal/domain/order/valueobjects"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type UpdateOrderStatusCommand struct {
	OrderID       string
	Status        string
	PaymentStatus string
}

type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewUpdateOrderStatusUseCase(orderRepo order.Repository, logger logger.Interface) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	status, err := vo.NewOrderStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid status", err.Error())
	}

	var paymentStatus vo.PaymentStatus
	if cmd.PaymentStatus != "" {
		paymentStatus, err = vo.NewPaymentStatus(cmd.PaymentStatus)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid payment status", err.Error())
		}
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, apperrors.NewInternalError("failed to update order").WithCause(err)
	}

	previous := o.Status()
	if err := o.ChangeStatus(status, paymentStatus); err != nil {
		return nil, apperrors.NewValidationError("invalid status change", err.Error())
	}

	if err := uc.orderRepo.UpdateStatus(ctx, o); err != nil {
		uc.logger.Errorw("failed to update order status", "error", err, "order_id", o.ID())
		return nil, apperrors.NewInternalError("failed to update order").WithCause(err)
	}

	uc.logger.Infow("order status updated",
		"order_id", o.ID(),
		"from", previous,
		"to", o.Status(),
		"payment_status", o.PaymentStatus(),
	)
	return o, nil
}
