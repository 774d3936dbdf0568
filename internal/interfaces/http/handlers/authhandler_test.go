package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/application/user/dto"
	userUsecases "github.com/localshop/storefront/internal/application/user/usecases"
	"github.com/localshop/storefront/internal/domain/user"
	vo "github.com/localshop/storefront/internal/domain/user/valueobjects"
	"github.com/localshop/storefront/internal/interfaces/http/handlers/testutil"
	"github.com/localshop/storefront/internal/shared/authorization"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *user.User
	err    error
	gotCmd userUsecases.RegisterWithPasswordCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd userUsecases.RegisterWithPasswordCommand) (*user.User, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *userUsecases.LoginWithPasswordResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd userUsecases.LoginWithPasswordCommand) (*userUsecases.LoginWithPasswordResult, error) {
	return m.result, m.err
}

type mockGetUserUC struct {
	result *user.User
	err    error
	gotID  string
}

func (m *mockGetUserUC) Execute(ctx context.Context, userID string) (*user.User, error) {
	m.gotID = userID
	return m.result, m.err
}

func mustUser(t *testing.T) *user.User {
	t.Helper()
	email, err := vo.NewEmail("lan@example.vn")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Pham Thi Lan", "0987654321")
	require.NoError(t, err)
	return u
}

// =====================================================================
// Tests
// =====================================================================

func TestAuthHandler_Register(t *testing.T) {
	register := &mockRegisterUC{result: mustUser(t)}
	handler := NewAuthHandler(register, &mockLoginUC{}, &mockGetUserUC{}, testutil.NewMockLogger())

	body := dto.RegisterRequest{
		Email:    "lan@example.vn",
		Name:     "Pham Thi Lan",
		Phone:    "0987654321",
		Password: "matkhau-an-toan",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", body)
	handler.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "lan@example.vn", register.gotCmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data dto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, string(authorization.RoleCustomer), data.Role)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	register := &mockRegisterUC{}
	handler := NewAuthHandler(register, &mockLoginUC{}, &mockGetUserUC{}, testutil.NewMockLogger())

	body := dto.RegisterRequest{Email: "lan@example.vn", Name: "Lan", Password: "123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", body)
	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, register.gotCmd.Email)
}

func TestAuthHandler_Login(t *testing.T) {
	login := &mockLoginUC{result: &userUsecases.LoginWithPasswordResult{
		User:        mustUser(t),
		AccessToken: "signed.jwt.token",
		ExpiresIn:   3600,
	}}
	handler := NewAuthHandler(&mockRegisterUC{}, login, &mockGetUserUC{}, testutil.NewMockLogger())

	body := dto.LoginRequest{Email: "lan@example.vn", Password: "matkhau-an-toan"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data dto.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "signed.jwt.token", data.AccessToken)
	assert.Equal(t, "Bearer", data.TokenType)
	assert.Equal(t, int64(3600), data.ExpiresIn)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	login := &mockLoginUC{err: apperrors.NewUnauthorizedError("invalid email or password")}
	handler := NewAuthHandler(&mockRegisterUC{}, login, &mockGetUserUC{}, testutil.NewMockLogger())

	body := dto.LoginRequest{Email: "lan@example.vn", Password: "wrong-password"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	getUser := &mockGetUserUC{result: mustUser(t)}
	handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{}, getUser, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	testutil.SetAuthContext(c, "user-7", string(authorization.RoleCustomer))
	handler.GetCurrentUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", getUser.gotID)
}

func TestAuthHandler_GetCurrentUser_Unauthenticated(t *testing.T) {
	getUser := &mockGetUserUC{}
	handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{}, getUser, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	handler.GetCurrentUser(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, getUser.gotID)
}

// =====================================================================
// Health
// =====================================================================

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantState  string
	}{
		{"healthy", nil, http.StatusOK, "healthy"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(fakePinger{err: tt.err}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
			handler.HealthCheck(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, testutil.ParseResponse(w, &body))
			assert.Equal(t, tt.wantState, body["status"])
		})
	}
}
