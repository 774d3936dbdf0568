package handlers

import (
	"context"

	userUsecases "github.com/localshop/storefront/internal/application/user/usecases"
	"github.com/localshop/storefront/internal/domain/user"
)

// Use case interfaces for AuthHandler

type registerWithPasswordUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.RegisterWithPasswordCommand) (*user.User, error)
}

type loginWithPasswordUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.LoginWithPasswordCommand) (*userUsecases.LoginWithPasswordResult, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID string) (*user.User, error)
}
