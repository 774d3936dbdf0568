package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/localshop/storefront/internal/domain/user"
	vo "github.com/localshop/storefront/internal/domain/user/valueobjects"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	roleAssigner   RoleAssigner
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	roleAssigner RoleAssigner,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		roleAssigner:   roleAssigner,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email)))
	if err != nil {
		// Same response for unknown email and wrong password.
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewInternalError("failed to log in").WithCause(err)
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("failed login attempt", "user_id", existingUser.ID())
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	uc.upgradeHash(ctx, existingUser, cmd.Password)

	token, err := uc.tokens.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existingUser.ID())
		return nil, apperrors.NewInternalError("failed to log in").WithCause(err)
	}

	if uc.roleAssigner != nil {
		if err := uc.roleAssigner.AssignRole(ctx, existingUser.ID(), existingUser.Role()); err != nil {
			uc.logger.Warnw("failed to sync role", "error", err, "user_id", existingUser.ID())
		}
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginWithPasswordResult{
		User:        existingUser,
		AccessToken: token.Token,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}

// rehasher is implemented by hashers whose work factor can change between
// deployments.
type rehasher interface {
	NeedsRehash(hash string) bool
}

// upgradeHash re-hashes a verified password created under an older cost.
// Failures are logged and never block the login.
func (uc *LoginWithPasswordUseCase) upgradeHash(ctx context.Context, u *user.User, plain string) {
	r, ok := uc.passwordHasher.(rehasher)
	if !ok || !r.NeedsRehash(u.PasswordHash()) {
		return
	}
	password, err := vo.NewPassword(plain)
	if err != nil {
		return
	}
	if err := u.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("failed to rehash password", "error", err, "user_id", u.ID())
		return
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to store rehashed password", "error", err, "user_id", u.ID())
	}
}
