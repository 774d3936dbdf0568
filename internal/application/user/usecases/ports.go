package usecases

import (
	"context"

	"github.com/localshop/storefront/internal/shared/authorization"
)

type TokenIssuer interface {
	Generate(userID string, role authorization.UserRole) (*AccessToken, error)
}

type AccessToken struct {
	Token     string
	ExpiresIn int64
}

// RoleAssigner records a user's role with the policy enforcer.
type RoleAssigner interface {
	AssignRole(ctx context.Context, userID string, role authorization.UserRole) error
}
