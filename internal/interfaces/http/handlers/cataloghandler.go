package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/application/catalog/dto"
	catalogUsecases "github.com/localshop/storefront/internal/application/catalog/usecases"
	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

// CatalogUseCases groups the use cases served by CatalogHandler.
type CatalogUseCases struct {
	ListCategories    listCategoriesUseCase
	CreateCategory    createCategoryUseCase
	ReorderCategories reorderCategoriesUseCase
	ListProducts      listProductsUseCase
	GetProduct        getProductUseCase
	CreateProduct     createProductUseCase
}

type CatalogHandler struct {
	uc     CatalogUseCases
	logger logger.Interface
}

func NewCatalogHandler(uc CatalogUseCases, logger logger.Interface) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// @Summary		List categories
// @Description	Active categories ordered by display order
// @Tags			catalog
// @Produce		json
// @Success		200	{object}	utils.APIResponse{data=[]dto.CategoryResponse}	"OK"
// @Router			/api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.uc.ListCategories.Execute(c.Request.Context(), true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToCategoryResponses(categories))
}

// @Summary		Create category
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			category	body		dto.CreateCategoryRequest						true	"Category data"
// @Success		201			{object}	utils.APIResponse{data=dto.CategoryResponse}	"Category created"
// @Failure		400			{object}	utils.APIResponse								"Bad request"
// @Failure		409			{object}	utils.APIResponse								"Slug already exists"
// @Router			/api/admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	category, err := h.uc.CreateCategory.Execute(c.Request.Context(), catalogUsecases.CreateCategoryCommand{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToCategoryResponse(category), "Category created successfully")
}

// @Summary		Reorder categories
// @Description	Apply all display order changes in a single transaction
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			order	body		dto.ReorderCategoriesRequest					true	"New positions"
// @Success		200		{object}	utils.APIResponse{data=[]dto.CategoryResponse}	"Reordered"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		404		{object}	utils.APIResponse								"Category not found"
// @Router			/api/admin/categories/reorder [post]
func (h *CatalogHandler) ReorderCategories(c *gin.Context) {
	var req dto.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	updates := make([]catalog.DisplayOrderUpdate, 0, len(req.Categories))
	for _, item := range req.Categories {
		updates = append(updates, catalog.DisplayOrderUpdate{
			CategoryID:   item.ID,
			DisplayOrder: item.DisplayOrder,
		})
	}

	categories, err := h.uc.ReorderCategories.Execute(c.Request.Context(), updates)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Categories reordered", dto.ToCategoryResponses(categories))
}

// @Summary		List products
// @Tags			catalog
// @Produce		json
// @Param			category	query		string	false	"Category slug or ID"
// @Param			q			query		string	false	"Name search"
// @Param			page		query		int		false	"Page number"
// @Param			page_size	query		int		false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse}	"OK"
// @Router			/api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.uc.ListProducts.Execute(c.Request.Context(), catalogUsecases.ListProductsQuery{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, dto.ToProductResponses(result.Products), result.Total, p.Page, p.PageSize)
}

// @Summary		Get product
// @Description	Product detail with the description rendered to sanitized HTML
// @Tags			catalog
// @Produce		json
// @Param			id	path		string										true	"Product ID or slug"
// @Success		200	{object}	utils.APIResponse{data=dto.ProductResponse}	"OK"
// @Failure		404	{object}	utils.APIResponse							"Product not found"
// @Router			/api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	result, err := h.uc.GetProduct.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp := dto.ToProductResponse(result.Product)
	resp.DescriptionHTML = result.DescriptionHTML
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// @Summary		Create product
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			product	body		dto.CreateProductRequest					true	"Product data"
// @Success		201		{object}	utils.APIResponse{data=dto.ProductResponse}	"Product created"
// @Failure		400		{object}	utils.APIResponse							"Bad request"
// @Failure		404		{object}	utils.APIResponse							"Category not found"
// @Router			/api/admin/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	product, err := h.uc.CreateProduct.Execute(c.Request.Context(), catalogUsecases.CreateProductCommand{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("product created", "product_id", product.ID(), "admin_id", currentUserID(c))
	utils.CreatedResponse(c, dto.ToProductResponse(product), "Product created successfully")
}
