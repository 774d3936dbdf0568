package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/application/order/dto"
	orderUsecases "github.com/localshop/storefront/internal/application/order/usecases"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUC  createOrderUseCase
	getOrderUC     getOrderUseCase
	listOrdersUC   listUserOrdersUseCase
	updateStatusUC updateOrderStatusUseCase
	logger         logger.Interface
}

func NewOrderHandler(
	createOrderUC createOrderUseCase,
	getOrderUC getOrderUseCase,
	listOrdersUC listUserOrdersUseCase,
	updateStatusUC updateOrderStatusUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC:  createOrderUC,
		getOrderUC:     getOrderUC,
		listOrdersUC:   listOrdersUC,
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

// @Summary		Create order
// @Description	Place an order as a guest or as the signed-in user. Prices come from the catalog.
// @Tags			orders
// @Accept			json
// @Produce		json
// @Param			order	body		dto.CreateOrderRequest						true	"Order data"
// @Success		201		{object}	utils.APIResponse{data=dto.OrderResponse}	"Order created"
// @Failure		400		{object}	utils.APIResponse							"Bad request"
// @Failure		404		{object}	utils.APIResponse							"Product not found"
// @Failure		409		{object}	utils.APIResponse							"Insufficient stock"
// @Failure		429		{object}	utils.APIResponse							"Too many requests"
// @Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create order", "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	cmd := orderUsecases.CreateOrderCommand{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           make([]orderUsecases.CreateOrderItem, 0, len(req.Items)),
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		PromotionCode:   req.PromotionCode,
	}
	if userID := currentUserID(c); userID != "" {
		cmd.UserID = &userID
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, orderUsecases.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	o, err := h.createOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToOrderResponse(o), "Order created successfully")
}

// @Summary		Get order
// @Tags			orders
// @Produce		json
// @Param			id	path		string										true	"Order ID"
// @Success		200	{object}	utils.APIResponse{data=dto.OrderResponse}	"OK"
// @Failure		404	{object}	utils.APIResponse							"Order not found"
// @Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.getOrderUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToOrderResponse(o))
}

// @Summary		List my orders
// @Tags			orders
// @Produce		json
// @Security		Bearer
// @Param			page		query		int	false	"Page number"
// @Param			page_size	query		int	false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse}	"OK"
// @Failure		401			{object}	utils.APIResponse							"Unauthorized"
// @Router			/api/orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listOrdersUC.Execute(c.Request.Context(), orderUsecases.ListUserOrdersQuery{
		UserID:   currentUserID(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, dto.ToOrderResponses(result.Orders), result.Total, p.Page, p.PageSize)
}

// @Summary		Update order status
// @Description	Admin: move an order through fulfilment. COD payment status follows the order status.
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			status	body		dto.UpdateOrderStatusRequest				true	"New status"
// @Success		200		{object}	utils.APIResponse{data=dto.OrderResponse}	"Order updated"
// @Failure		400		{object}	utils.APIResponse							"Bad request"
// @Failure		403		{object}	utils.APIResponse							"Forbidden"
// @Failure		404		{object}	utils.APIResponse							"Order not found"
// @Router			/api/admin/orders/update-status [post]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	o, err := h.updateStatusUC.Execute(c.Request.Context(), orderUsecases.UpdateOrderStatusCommand{
		OrderID:       req.OrderID,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("order status updated",
		"order_id", o.ID(),
		"status", o.Status().String(),
		"admin_id", currentUserID(c),
	)
	utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", dto.ToOrderResponse(o))
}
