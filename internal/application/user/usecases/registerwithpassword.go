package usecases

import (
	"context"
	"strings"

	"github.com/localshop/storefront/internal/domain/user"
	vo "github.com/localshop/storefront/internal/domain/user/valueobjects"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	roleAssigner   RoleAssigner
	adminEmails    map[string]struct{}
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	roleAssigner RoleAssigner,
	adminEmails []string,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		roleAssigner:   roleAssigner,
		adminEmails:    admins,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*user.User, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email", err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid password", err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, apperrors.NewInternalError("failed to register user").WithCause(err)
	}
	if exists {
		return nil, apperrors.NewConflictError("email already registered")
	}

	newUser, err := user.NewUser(email, cmd.Name, cmd.Phone)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid user", err.Error())
	}

	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, apperrors.NewInternalError("failed to register user").WithCause(err)
	}

	if _, ok := uc.adminEmails[email.String()]; ok {
		newUser.PromoteToAdmin()
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create user in database", "error", err)
		return nil, apperrors.NewInternalError("failed to register user").WithCause(err)
	}

	if uc.roleAssigner != nil {
		if err := uc.roleAssigner.AssignRole(ctx, newUser.ID(), newUser.Role()); err != nil {
			// The role column is authoritative; the policy is re-synced on the next login.
			uc.logger.Warnw("failed to assign role", "error", err, "user_id", newUser.ID())
		}
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "role", newUser.Role())

	return newUser, nil
}
