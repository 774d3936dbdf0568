package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/shared/constants"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
)

func newResponseContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	c.Set(constants.ContextKeyRequestID, "req-42")
	return c, w
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    string
		wantMessage string
	}{
		{"app error", apperrors.NewNotFoundError("order not found"), http.StatusNotFound, string(apperrors.ErrorTypeNotFound), "order not found"},
		{"wrapped app error", apperrors.NewConflictError("out of stock").WithCause(errors.New("stock=0")), http.StatusConflict, string(apperrors.ErrorTypeConflict), "out of stock"},
		{"plain error is hidden", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, string(apperrors.ErrorTypeInternal), "Internal server error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newResponseContext()
			ErrorResponseWithError(c, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.Equal(t, "req-42", resp.Error.RequestID)
		})
	}
}

func TestListSuccessResponse(t *testing.T) {
	c, w := newResponseContext()
	ListSuccessResponse(c, []string{"a", "b"}, 41, 2, 20)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool         `json:"success"`
		Data    ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.Equal(t, int64(41), resp.Data.Total)
}

func TestCreatedResponse_DefaultMessage(t *testing.T) {
	c, w := newResponseContext()
	CreatedResponse(c, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Resource created successfully")
}
