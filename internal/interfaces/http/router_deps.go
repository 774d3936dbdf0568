package http

import (
	userUsecases "github.com/localshop/storefront/internal/application/user/usecases"
	"github.com/localshop/storefront/internal/infrastructure/auth"
	"github.com/localshop/storefront/internal/shared/authorization"
)

// jwtServiceAdapter adapts auth.JWTService to usecases.TokenIssuer interface
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID string, role authorization.UserRole) (*userUsecases.AccessToken, error) {
	token, err := a.JWTService.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &userUsecases.AccessToken{
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
	}, nil
}
