package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/application/promotion/dto"
	promotionUsecases "github.com/localshop/storefront/internal/application/promotion/usecases"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

type PromotionHandler struct {
	validateUC validatePromotionUseCase
	createUC   createPromotionUseCase
	listUC     listPromotionsUseCase
	logger     logger.Interface
}

func NewPromotionHandler(
	validateUC validatePromotionUseCase,
	createUC createPromotionUseCase,
	listUC listPromotionsUseCase,
	logger logger.Interface,
) *PromotionHandler {
	return &PromotionHandler{
		validateUC: validateUC,
		createUC:   createUC,
		listUC:     listUC,
		logger:     logger,
	}
}

// @Summary		Validate promotion code
// @Description	Check a code against a cart subtotal and return the discount it would give
// @Tags			promotions
// @Accept			json
// @Produce		json
// @Param			promotion	body		dto.ValidatePromotionRequest						true	"Code and subtotal"
// @Success		200			{object}	utils.APIResponse{data=dto.ValidatePromotionResponse}	"Code is valid"
// @Failure		400			{object}	utils.APIResponse										"Code not applicable"
// @Failure		404			{object}	utils.APIResponse										"Code not found"
// @Router			/api/promotions/validate [post]
func (h *PromotionHandler) ValidatePromotion(c *gin.Context) {
	var req dto.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.validateUC.Execute(c.Request.Context(), promotionUsecases.ValidatePromotionQuery{
		Code:     req.Code,
		Subtotal: req.Subtotal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ValidatePromotionResponse{
		Code:           result.Promotion.Code(),
		Description:    result.Promotion.Description(),
		DiscountType:   string(result.Promotion.DiscountType()),
		DiscountAmount: result.DiscountAmount,
		FinalAmount:    result.FinalAmount,
	})
}

// @Summary		Create promotion
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			promotion	body		dto.CreatePromotionRequest						true	"Promotion data"
// @Success		201			{object}	utils.APIResponse{data=dto.PromotionResponse}	"Promotion created"
// @Failure		400			{object}	utils.APIResponse								"Bad request"
// @Failure		409			{object}	utils.APIResponse								"Code already exists"
// @Router			/api/admin/promotions [post]
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), promotionUsecases.CreatePromotionCommand{
		Code:          req.Code,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinPurchase:   req.MinPurchase,
		MaxDiscount:   req.MaxDiscount,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		UsageLimit:    req.UsageLimit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToPromotionResponse(p), "Promotion created successfully")
}

// @Summary		List promotions
// @Tags			admin
// @Produce		json
// @Security		Bearer
// @Param			page		query		int	false	"Page number"
// @Param			page_size	query		int	false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse}	"OK"
// @Router			/api/admin/promotions [get]
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	p := utils.ParsePagination(c)
	promotions, total, err := h.listUC.Execute(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*dto.PromotionResponse, 0, len(promotions))
	for _, promo := range promotions {
		items = append(items, dto.ToPromotionResponse(promo))
	}
	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
