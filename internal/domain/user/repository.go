package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	// GetByID and GetByEmail return ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
}
