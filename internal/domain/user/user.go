package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/localshop/storefront/internal/domain/user/valueobjects"
	"github.com/localshop/storefront/internal/shared/authorization"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is a shop account. Guests check out without one.
type User struct {
	id           string
	email        *vo.Email
	name         string
	phone        string
	passwordHash string
	role         authorization.UserRole
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email *vo.Email, name, phone string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &User{
		id:        id.NewUUID(),
		email:     email,
		name:      name,
		phone:     strings.TrimSpace(phone),
		role:      authorization.RoleCustomer,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	u.version++
	return nil
}

// VerifyPassword returns ErrInvalidCredentials for any mismatch so callers
// cannot tell a wrong password from a missing hash.
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (u *User) PromoteToAdmin() {
	u.role = authorization.RoleAdmin
	u.updatedAt = biztime.NowUTC()
	u.version++
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) Version() int {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

type UserReconstructParams struct {
	ID           string
	Email        *vo.Email
	Name         string
	Phone        string
	PasswordHash string
	Role         authorization.UserRole
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructUser(params UserReconstructParams) *User {
	return &User{
		id:           params.ID,
		email:        params.Email,
		name:         params.Name,
		phone:        params.Phone,
		passwordHash: params.PasswordHash,
		role:         params.Role,
		version:      params.Version,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
	}
}
