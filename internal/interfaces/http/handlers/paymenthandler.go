package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	paymentUsecases "github.com/localshop/storefront/internal/application/payment/usecases"
	"github.com/localshop/storefront/internal/domain/payment"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

// IPN acknowledgement codes expected by VNPay.
const (
	ipnCodeConfirmed      = "00"
	ipnCodeOrderNotFound  = "01"
	ipnCodeAlreadyHandled = "02"
	ipnCodeInvalidAmount  = "04"
	ipnCodeInvalidHash    = "97"
	ipnCodeUnknownError   = "99"
)

// Customer-facing texts for callbacks that never reached settlement.
const (
	returnMsgRejected = "Chữ ký không hợp lệ"
	returnMsgNotFound = "Không tìm thấy giao dịch"
	returnMsgAmount   = "Số tiền thanh toán không khớp"
	returnMsgInternal = "Có lỗi xảy ra khi xử lý thanh toán"
)

type PaymentHandler struct {
	createPaymentUC  createPaymentUseCase
	handleCallbackUC handlePaymentCallbackUseCase
	frontendURL      string
	logger           logger.Interface
}

func NewPaymentHandler(
	createPaymentUC createPaymentUseCase,
	handleCallbackUC handlePaymentCallbackUseCase,
	frontendURL string,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createPaymentUC:  createPaymentUC,
		handleCallbackUC: handleCallbackUC,
		frontendURL:      strings.TrimRight(frontendURL, "/"),
		logger:           logger,
	}
}

type CreateVNPayPaymentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

type CreateVNPayPaymentResponse struct {
	PaymentURL string    `json:"payment_url"`
	TxnRef     string    `json:"txn_ref"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IPNResponse is the acknowledgement body VNPay parses on the IPN call.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// @Summary		Create VNPay payment
// @Description	Create (or reuse) a pending VNPay transaction for an order and return the redirect URL
// @Tags			payments
// @Accept			json
// @Produce		json
// @Param			payment	body		CreateVNPayPaymentRequest							true	"Order to pay"
// @Success		200		{object}	utils.APIResponse{data=CreateVNPayPaymentResponse}	"Payment URL created"
// @Failure		400		{object}	utils.APIResponse									"Bad request"
// @Failure		404		{object}	utils.APIResponse									"Order not found"
// @Failure		409		{object}	utils.APIResponse									"Order not payable"
// @Failure		500		{object}	utils.APIResponse									"Internal server error"
// @Router			/api/payments/vnpay [post]
func (h *PaymentHandler) CreateVNPayPayment(c *gin.Context) {
	var req CreateVNPayPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create payment", "error", err)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.createPaymentUC.Execute(c.Request.Context(), paymentUsecases.CreatePaymentCommand{
		OrderID:  req.OrderID,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		h.logger.Errorw("failed to create payment", "error", err, "order_id", req.OrderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment URL created", CreateVNPayPaymentResponse{
		PaymentURL: result.PaymentURL,
		TxnRef:     result.TxnRef,
		ExpiresAt:  result.ExpiresAt,
	})
}

// @Summary		VNPay IPN
// @Description	Server-to-server payment notification from VNPay. Always answers with an RspCode body.
// @Tags			payments
// @Produce		json
// @Success		200	{object}	IPNResponse	"Acknowledged"
// @Failure		400	{object}	IPNResponse	"Invalid signature"
// @Failure		500	{object}	IPNResponse	"Unknown error"
// @Router			/api/vnpay/ipn [get]
func (h *PaymentHandler) VNPayIPN(c *gin.Context) {
	result, err := h.handleCallbackUC.Execute(c.Request.Context(), paymentUsecases.HandlePaymentCallbackCommand{
		Source: paymentUsecases.SourceIPN,
		Params: c.Request.URL.Query(),
	})
	status, body := ipnAcknowledgement(result, err)
	if err != nil {
		h.logger.Warnw("vnpay ipn not confirmed", "rsp_code", body.RspCode, "error", err)
	}
	c.JSON(status, body)
}

func ipnAcknowledgement(result *paymentUsecases.HandlePaymentCallbackResult, err error) (int, IPNResponse) {
	switch {
	case err == nil && result.AlreadyProcessed:
		return http.StatusOK, IPNResponse{RspCode: ipnCodeAlreadyHandled, Message: "Order already confirmed"}
	case err == nil:
		return http.StatusOK, IPNResponse{RspCode: ipnCodeConfirmed, Message: "Confirm Success"}
	case errors.Is(err, paymentgateway.ErrInvalidSignature), errors.Is(err, paymentgateway.ErrMalformedCallback):
		return http.StatusBadRequest, IPNResponse{RspCode: ipnCodeInvalidHash, Message: "Invalid signature"}
	case errors.Is(err, payment.ErrPaymentNotFound):
		return http.StatusOK, IPNResponse{RspCode: ipnCodeOrderNotFound, Message: "Order not found"}
	case errors.Is(err, payment.ErrAmountMismatch):
		return http.StatusOK, IPNResponse{RspCode: ipnCodeInvalidAmount, Message: "Invalid amount"}
	default:
		return http.StatusInternalServerError, IPNResponse{RspCode: ipnCodeUnknownError, Message: "Unknown error"}
	}
}

// @Summary		VNPay return
// @Description	Browser redirect target after payment. Settles the transaction and redirects to the storefront.
// @Tags			payments
// @Success		302
// @Router			/payment/vnpay-return [get]
func (h *PaymentHandler) VNPayReturn(c *gin.Context) {
	result, err := h.handleCallbackUC.Execute(c.Request.Context(), paymentUsecases.HandlePaymentCallbackCommand{
		Source: paymentUsecases.SourceReturn,
		Params: c.Request.URL.Query(),
	})
	if err != nil {
		h.logger.Warnw("vnpay return not settled", "error", err)
		c.Redirect(http.StatusFound, h.failureURL(returnErrorMessage(err)))
		return
	}

	if result.Status.IsPaid() {
		c.Redirect(http.StatusFound, h.frontendURL+"/order-success?orderId="+url.QueryEscape(result.OrderID))
		return
	}
	c.Redirect(http.StatusFound, h.failureURL(result.Message))
}

func (h *PaymentHandler) failureURL(message string) string {
	q := url.Values{}
	q.Set("status", "failed")
	q.Set("message", message)
	return h.frontendURL + "/payment-result?" + q.Encode()
}

func returnErrorMessage(err error) string {
	switch {
	case errors.Is(err, paymentgateway.ErrInvalidSignature), errors.Is(err, paymentgateway.ErrMalformedCallback):
		return returnMsgRejected
	case errors.Is(err, payment.ErrPaymentNotFound):
		return returnMsgNotFound
	case errors.Is(err, payment.ErrAmountMismatch):
		return returnMsgAmount
	default:
		return returnMsgInternal
	}
}
