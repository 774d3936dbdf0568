package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/domain/order"
	vo "github.com/localshop/storefront/internal/domain/order/valueobjects"
	"github.com/localshop/storefront/internal/domain/promotion"
	"github.com/localshop/storefront/internal/domain/shared/services"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/constants"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

const compensateTimeout = 10 * time.Second

// TextSanitizer strips markup from customer-supplied text.
type TextSanitizer interface {
	PlainText(input string) string
}

type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderCommand struct {
	UserID          *string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Items           []CreateOrderItem
	PaymentMethod   string
	Notes           string
	PromotionCode   string
}

type CreateOrderUseCase struct {
	orderRepo     order.Repository
	productRepo   catalog.ProductRepository
	promotionRepo promotion.Repository
	numbers       services.OrderNumberGenerator
	sanitizer     TextSanitizer
	logger        logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	promotionRepo promotion.Repository,
	numbers services.OrderNumberGenerator,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		promotionRepo: promotionRepo,
		numbers:       numbers,
		sanitizer:     sanitizer,
		logger:        logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, apperrors.NewValidationError(order.ErrEmptyOrder.Error())
	}

	method, err := vo.NewPaymentMethod(cmd.PaymentMethod)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment method", err.Error())
	}

	items, err := uc.priceItems(ctx, cmd.Items)
	if err != nil {
		return nil, err
	}

	orderNumber, err := uc.numbers.Generate(constants.OrderNumberPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create order").WithCause(err)
	}

	notes := cmd.Notes
	if uc.sanitizer != nil {
		notes = uc.sanitizer.PlainText(notes)
	}

	newOrder, err := order.NewOrder(order.NewOrderParams{
		OrderNumber: orderNumber,
		UserID:      cmd.UserID,
		Customer: order.Customer{
			Name:    cmd.CustomerName,
			Email:   cmd.CustomerEmail,
			Phone:   cmd.CustomerPhone,
			Address: cmd.ShippingAddress,
		},
		Items:         items,
		PaymentMethod: method,
		Notes:         notes,
	})
	if err != nil {
		return nil, apperrors.NewValidationError("invalid order", err.Error())
	}

	promo, err := uc.applyPromotion(ctx, newOrder, cmd.PromotionCode)
	if err != nil {
		return nil, err
	}

	if err := newOrder.EnsurePayable(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.persist(ctx, newOrder); err != nil {
		return nil, err
	}

	if promo != nil {
		consumed, err := uc.promotionRepo.ConsumeUsage(ctx, promo.ID())
		if err != nil || !consumed {
			// The order stands; the discount was valid when it was priced.
			uc.logger.Warnw("failed to consume promotion usage",
				"order_id", newOrder.ID(),
				"code", promo.Code(),
				"consumed", consumed,
				"error", err,
			)
		}
	}

	uc.logger.Infow("order created",
		"order_id", newOrder.ID(),
		"order_number", newOrder.OrderNumber(),
		"payment_method", newOrder.PaymentMethod(),
		"total", newOrder.TotalAmount().StringFixed(0),
		"items", len(newOrder.Items()),
	)

	return newOrder, nil
}

// priceItems takes unit prices from the catalog, never from the request.
func (uc *CreateOrderUseCase) priceItems(ctx context.Context, lines []CreateOrderItem) ([]*order.OrderItem, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, apperrors.NewValidationError("quantity must be positive", line.ProductID)
		}
		ids = append(ids, line.ProductID)
	}

	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load products", "error", err)
		return nil, apperrors.NewInternalError("failed to create order").WithCause(err)
	}

	items := make([]*order.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, apperrors.NewValidationError("product not found", line.ProductID).WithCause(catalog.ErrProductNotFound)
		}
		if err := product.CheckAvailability(line.Quantity); err != nil {
			return nil, apperrors.NewValidationError("product unavailable", err.Error()).WithCause(err)
		}
		item, err := order.NewOrderItem(product.ID(), product.Name(), product.EffectivePrice(), line.Quantity)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid order item", err.Error())
		}
		items = append(items, item)
	}
	return items, nil
}

func (uc *CreateOrderUseCase) applyPromotion(ctx context.Context, o *order.Order, code string) (*promotion.Promotion, error) {
	code = promotion.NormalizeCode(code)
	if code == "" {
		return nil, nil
	}

	promo, err := uc.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			return nil, apperrors.NewValidationError("invalid promotion code").WithCause(err)
		}
		return nil, apperrors.NewInternalError("failed to create order").WithCause(err)
	}

	if err := promo.CheckEligibility(o.Subtotal(), biztime.NowUTC()); err != nil {
		return nil, apperrors.NewValidationError("promotion not applicable", err.Error()).WithCause(err)
	}

	if err := o.ApplyDiscount(promo.Code(), promo.CalculateDiscount(o.Subtotal())); err != nil {
		return nil, apperrors.NewValidationError("promotion not applicable", err.Error())
	}
	return promo, nil
}

// persist writes the header, then the items. When the items fail the header
// is deleted again so no order is left without lines. The delete runs on a
// context detached from the request, which may already be cancelled.
func (uc *CreateOrderUseCase) persist(ctx context.Context, o *order.Order) error {
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		uc.logger.Errorw("failed to create order", "error", err, "order_number", o.OrderNumber())
		return apperrors.NewInternalError("failed to create order").WithCause(err)
	}

	itemsErr := uc.orderRepo.CreateItems(ctx, o.ID(), o.Items())
	if itemsErr == nil {
		return nil
	}

	uc.logger.Errorw("failed to create order items, removing order", "error", itemsErr, "order_id", o.ID())

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	err := fmt.Errorf("failed to create order items: %w", itemsErr)
	if deleteErr := uc.orderRepo.Delete(cleanupCtx, o.ID()); deleteErr != nil {
		uc.logger.Errorw("failed to remove order after item failure", "error", deleteErr, "order_id", o.ID())
		err = errors.Join(err, fmt.Errorf("failed to remove order %s: %w", o.ID(), deleteErr))
	}
	return apperrors.NewInternalError("failed to create order").WithCause(err)
}
