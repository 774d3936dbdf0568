package handlers

import (
	"context"

	paymentUsecases "github.com/localshop/storefront/internal/application/payment/usecases"
)

// Use case interfaces for PaymentHandler

type createPaymentUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.CreatePaymentCommand) (*paymentUsecases.CreatePaymentResult, error)
}

type handlePaymentCallbackUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.HandlePaymentCallbackCommand) (*paymentUsecases.HandlePaymentCallbackResult, error)
}
