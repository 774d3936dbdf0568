package handlers

import (
	"context"

	orderUsecases "github.com/localshop/storefront/internal/application/order/usecases"
	"github.com/localshop/storefront/internal/domain/order"
)

// Use case interfaces for OrderHandler

type createOrderUseCase interface {
	Execute(ctx context.Context, cmd orderUsecases.CreateOrderCommand) (*order.Order, error)
}

type getOrderUseCase interface {
	Execute(ctx context.Context, orderID string) (*order.Order, error)
}

type listUserOrdersUseCase interface {
	Execute(ctx context.Context, query orderUsecases.ListUserOrdersQuery) (*orderUsecases.ListUserOrdersResult, error)
}

type updateOrderStatusUseCase interface {
	Execute(ctx context.Context, cmd orderUsecases.UpdateOrderStatusCommand) (*order.Order, error)
}
