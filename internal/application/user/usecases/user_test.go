package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/domain/user"
	"github.com/localshop/storefront/internal/shared/authorization"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID()] = u
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }

func (plainHasher) Verify(p, h string) error {
	if "h:"+p != h {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(userID string, role authorization.UserRole) (*AccessToken, error) {
	return &AccessToken{Token: userID + ":" + role.String(), ExpiresIn: 3600}, nil
}

type recordingAssigner struct {
	roles map[string]authorization.UserRole
}

func (a *recordingAssigner) AssignRole(_ context.Context, userID string, role authorization.UserRole) error {
	a.roles[userID] = role
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	assigner := &recordingAssigner{roles: map[string]authorization.UserRole{}}
	register := NewRegisterWithPasswordUseCase(repo, plainHasher{}, assigner, []string{"Owner@Shop.vn"}, logger.NewNopLogger())
	login := NewLoginWithPasswordUseCase(repo, plainHasher{}, fakeTokens{}, assigner, logger.NewNopLogger())
	ctx := context.Background()

	customer, err := register.Execute(ctx, RegisterWithPasswordCommand{
		Email: "Buyer@Example.com", Name: "Buyer", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleCustomer, customer.Role())
	assert.Equal(t, "buyer@example.com", customer.Email().String())

	owner, err := register.Execute(ctx, RegisterWithPasswordCommand{
		Email: "owner@shop.vn", Name: "Owner", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, owner.Role())
	assert.Equal(t, authorization.RoleAdmin, assigner.roles[owner.ID()])

	_, err = register.Execute(ctx, RegisterWithPasswordCommand{
		Email: "buyer@example.com", Name: "Again", Password: "password123",
	})
	assert.True(t, apperrors.IsConflictError(err))

	result, err := login.Execute(ctx, LoginWithPasswordCommand{Email: " BUYER@example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, customer.ID()+":customer", result.AccessToken)

	_, err = login.Execute(ctx, LoginWithPasswordCommand{Email: "buyer@example.com", Password: "nope"})
	wrongPassword := apperrors.GetAppError(err)
	require.NotNil(t, wrongPassword)

	_, err = login.Execute(ctx, LoginWithPasswordCommand{Email: "ghost@example.com", Password: "password123"})
	unknownEmail := apperrors.GetAppError(err)
	require.NotNil(t, unknownEmail)

	assert.Equal(t, apperrors.ErrorTypeUnauthorized, wrongPassword.Type)
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestRegister_Validation(t *testing.T) {
	register := NewRegisterWithPasswordUseCase(newFakeUserRepo(), plainHasher{}, nil, nil, logger.NewNopLogger())

	_, err := register.Execute(context.Background(), RegisterWithPasswordCommand{Email: "bad", Name: "X", Password: "password123"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = register.Execute(context.Background(), RegisterWithPasswordCommand{Email: "a@b.vn", Name: "X", Password: "1"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetUser_NotFound(t *testing.T) {
	uc := NewGetUserUseCase(newFakeUserRepo(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}

// versionedHasher prefixes hashes with a version so a cost bump can be
// simulated without bcrypt.
type versionedHasher struct{ version string }

func (h versionedHasher) Hash(p string) (string, error) { return h.version + ":" + p, nil }

func (h versionedHasher) Verify(p, hash string) error {
	if len(hash) < 3 || hash[3:] != p {
		return errors.New("mismatch")
	}
	return nil
}

func (h versionedHasher) NeedsRehash(hash string) bool {
	return len(hash) < 2 || hash[:2] != h.version
}

func TestLogin_UpgradesOutdatedHash(t *testing.T) {
	repo := newFakeUserRepo()
	ctx := context.Background()

	register := NewRegisterWithPasswordUseCase(repo, versionedHasher{version: "v1"}, nil, nil, logger.NewNopLogger())
	u, err := register.Execute(ctx, RegisterWithPasswordCommand{Email: "lan@example.vn", Name: "Lan", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "v1:password123", u.PasswordHash())

	login := NewLoginWithPasswordUseCase(repo, versionedHasher{version: "v2"}, fakeTokens{}, nil, logger.NewNopLogger())
	_, err = login.Execute(ctx, LoginWithPasswordCommand{Email: "lan@example.vn", Password: "password123"})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "v2:password123", stored.PasswordHash())
}
