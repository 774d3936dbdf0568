package usecases

import (
	"context"

	"github.com/localshop/storefront/internal/domain/order"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

type ListUserOrdersQuery struct {
	UserID   string
	Page     int
	PageSize int
}

type ListUserOrdersResult struct {
	Orders []*order.Order
	Total  int64
}

type ListUserOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListUserOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListUserOrdersUseCase {
	return &ListUserOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListUserOrdersUseCase) Execute(ctx context.Context, query ListUserOrdersQuery) (*ListUserOrdersResult, error) {
	if query.UserID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	page := utils.ValidatePagination(query.Page, query.PageSize)
	orders, total, err := uc.orderRepo.ListByUserID(ctx, query.UserID, page.Offset(), page.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err, "user_id", query.UserID)
		return nil, apperrors.NewInternalError("failed to list orders").WithCause(err)
	}

	return &ListUserOrdersResult{Orders: orders, Total: total}, nil
}
