package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/application/user/dto"
	userUsecases "github.com/localshop/storefront/internal/application/user/usecases"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

const tokenTypeBearer = "Bearer"

type AuthHandler struct {
	registerUC registerWithPasswordUseCase
	loginUC    loginWithPasswordUseCase
	getUserUC  getUserUseCase
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC registerWithPasswordUseCase,
	loginUC loginWithPasswordUseCase,
	getUserUC getUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getUserUC:  getUserUC,
		logger:     logger,
	}
}

// @Summary		Register
// @Description	Create a customer account with email and password
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		dto.RegisterRequest							true	"Account data"
// @Success		201		{object}	utils.APIResponse{data=dto.UserResponse}	"Account created"
// @Failure		400		{object}	utils.APIResponse							"Bad request"
// @Failure		409		{object}	utils.APIResponse							"Email already registered"
// @Router			/api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	u, err := h.registerUC.Execute(c.Request.Context(), userUsecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToUserResponse(u), "Account created successfully")
}

// @Summary		Login
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		dto.LoginRequest							true	"Email and password"
// @Success		200			{object}	utils.APIResponse{data=dto.AuthResponse}	"Logged in"
// @Failure		400			{object}	utils.APIResponse							"Bad request"
// @Failure		401			{object}	utils.APIResponse							"Invalid credentials"
// @Router			/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userUsecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.AuthResponse{
		User:        dto.ToUserResponse(result.User),
		AccessToken: result.AccessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   result.ExpiresIn,
	})
}

// @Summary		Current user
// @Tags			auth
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=dto.UserResponse}	"OK"
// @Failure		401	{object}	utils.APIResponse							"Unauthorized"
// @Router			/api/auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	u, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserResponse(u))
}
