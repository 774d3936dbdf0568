package user

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/localshop/storefront/internal/domain/user/valueobjects"
	"github.com/localshop/storefront/internal/shared/authorization"
)

type mockPasswordHasher struct{}

func (h *mockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *mockPasswordHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := vo.NewEmail("  An.Nguyen@Example.com ")
	require.NoError(t, err)
	u, err := NewUser(email, " Nguyen Van An ", "0901234567")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)

	assert.NotEmpty(t, u.ID())
	assert.Equal(t, "an.nguyen@example.com", u.Email().String())
	assert.Equal(t, "Nguyen Van An", u.Name())
	assert.Equal(t, authorization.RoleCustomer, u.Role())
	assert.False(t, u.IsAdmin())
}

func TestNewUser_Invalid(t *testing.T) {
	_, err := NewUser(nil, "An", "")
	assert.Error(t, err)

	email, _ := vo.NewEmail("an@example.com")
	_, err = NewUser(email, "   ", "")
	assert.Error(t, err)
}

func TestPasswordLifecycle(t *testing.T) {
	u := newTestUser(t)
	hasher := &mockPasswordHasher{}

	assert.ErrorIs(t, u.VerifyPassword("secret123", hasher), ErrInvalidCredentials)

	pw, err := vo.NewPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(pw, hasher))

	assert.NoError(t, u.VerifyPassword("secret123", hasher))
	assert.ErrorIs(t, u.VerifyPassword("secret124", hasher), ErrInvalidCredentials)
	assert.Equal(t, 1, u.Version())
}

func TestPromoteToAdmin(t *testing.T) {
	u := newTestUser(t)
	u.PromoteToAdmin()
	assert.True(t, u.IsAdmin())
}

func TestNewPassword_Policy(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr error
	}{
		{"valid", "abc12345", nil},
		{"accented letters count once", "mậtkhẩu1", nil},
		{"too short", "ab1", vo.ErrPasswordTooShort},
		{"too long", strings.Repeat("a1", 37), vo.ErrPasswordTooLong},
		{"no number", "abcdefgh", vo.ErrPasswordTooWeak},
		{"no letter", "12345678", vo.ErrPasswordTooWeak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vo.NewPassword(tt.pw)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewEmail_Invalid(t *testing.T) {
	_, err := vo.NewEmail("not-an-email")
	assert.Error(t, err)
	_, err = vo.NewEmail("")
	assert.Error(t, err)
}
