package usecases

import (
	"context"
	"errors"

	"github.com/localshop/storefront/internal/domain/order"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID string) (*order.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		uc.logger.Errorw("failed to get order", "error", err, "order_id", orderID)
		return nil, apperrors.NewInternalError("failed to get order").WithCause(err)
	}
	return o, nil
}
