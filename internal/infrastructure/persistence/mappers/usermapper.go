package mappers

import (
	"fmt"

	"github.com/localshop/storefront/internal/domain/user"
	vo "github.com/localshop/storefront/internal/domain/user/valueobjects"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
	"github.com/localshop/storefront/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) (*models.UserModel, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	passwordHash := ""
	if model.PasswordHash != nil {
		passwordHash = *model.PasswordHash
	}

	return user.ReconstructUser(user.UserReconstructParams{
		ID:           model.ID,
		Email:        email,
		Name:         model.Name,
		Phone:        model.Phone,
		PasswordHash: passwordHash,
		Role:         authorization.ParseUserRole(model.Role),
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}), nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}
	if entity.Email() == nil {
		return nil, fmt.Errorf("user %s has no email", entity.ID())
	}

	model := &models.UserModel{
		ID:        entity.ID(),
		Email:     entity.Email().String(),
		Name:      entity.Name(),
		Phone:     entity.Phone(),
		Role:      entity.Role().String(),
		Version:   entity.Version(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
	if hash := entity.PasswordHash(); hash != "" {
		model.PasswordHash = &hash
	}
	return model, nil
}
