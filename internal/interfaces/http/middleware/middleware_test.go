package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/infrastructure/auth"
	"github.com/localshop/storefront/internal/infrastructure/ratelimit"
	"github.com/localshop/storefront/internal/shared/authorization"
	"github.com/localshop/storefront/internal/shared/constants"
	"github.com/localshop/storefront/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(engine *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 5)
	mw := NewAuthMiddleware(jwtSvc, logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/private", mw.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyUserID)+"/"+c.GetString(constants.ContextKeyUserRole))
	})
	engine.GET("/public", mw.OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "user="+c.GetString(constants.ContextKeyUserID))
	})

	token, err := jwtSvc.Generate("user-1", authorization.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"missing header", "/private", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "/private", "Basic abc", http.StatusUnauthorized, ""},
		{"bad token", "/private", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid token", "/private", "Bearer " + token.Token, http.StatusOK, "user-1/customer"},
		{"optional anonymous", "/public", "", http.StatusOK, "user="},
		{"optional bad token", "/public", "Bearer nope", http.StatusOK, "user="},
		{"optional valid", "/public", "Bearer " + token.Token, http.StatusOK, "user=user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}
			w := perform(engine, http.MethodGet, tt.path, h)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

type fakeEnforcer struct {
	allowed map[string]bool
	err     error
}

func (f *fakeEnforcer) Enforce(subject, obj, act string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.allowed[subject+" "+act+" "+obj], nil
}

func TestPermissionMiddleware(t *testing.T) {
	enforcer := &fakeEnforcer{allowed: map[string]bool{"admin-1 GET /api/admin/promotions": true}}
	perm := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	withUser := func(id string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id != "" {
				c.Set(constants.ContextKeyUserID, id)
			}
			c.Next()
		}
	}

	for _, tt := range []struct {
		user   string
		status int
	}{
		{"admin-1", http.StatusOK},
		{"user-2", http.StatusForbidden},
		{"", http.StatusUnauthorized},
	} {
		engine := gin.New()
		engine.GET("/api/admin/promotions", withUser(tt.user), perm.RequirePolicy(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := perform(engine, http.MethodGet, "/api/admin/promotions", nil)
		assert.Equal(t, tt.status, w.Code, "user %q", tt.user)
	}

	enforcer.err = errors.New("adapter down")
	engine := gin.New()
	engine.GET("/api/admin/promotions", withUser("admin-1"), perm.RequirePolicy(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusInternalServerError, perform(engine, http.MethodGet, "/api/admin/promotions", nil).Code)
}

type countingLimiter struct {
	counts map[string]int
	err    error
}

func (l *countingLimiter) Allow(_ context.Context, key string, policy ratelimit.Policy) (*ratelimit.Result, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.counts[key]++
	remaining := policy.Limit - l.counts[key]
	if remaining < 0 {
		remaining = 0
	}
	return &ratelimit.Result{Allowed: l.counts[key] <= policy.Limit, Remaining: remaining, ResetIn: 30 * time.Second}, nil
}

func (l *countingLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimiter(t *testing.T) {
	limiter := &countingLimiter{counts: map[string]int{}}
	rl := NewRateLimiter(limiter, ratelimit.Policy{Limit: 2, Window: time.Minute}, logger.NewNopLogger())

	engine := gin.New()
	engine.POST("/api/orders", rl.Limit("checkout"), func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/api/orders", nil).Code)
	w := perform(engine, http.MethodPost, "/api/orders", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(engine, http.MethodPost, "/api/orders", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "31", w.Header().Get("Retry-After"))

	limiter.err = errors.New("redis down")
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/api/orders", nil).Code)

	var disabled *RateLimiter
	engine = gin.New()
	engine.POST("/api/orders", disabled.Limit("checkout"), func(c *gin.Context) { c.Status(http.StatusCreated) })
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/api/orders", nil).Code)
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := perform(engine, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID)) })

	h := http.Header{}
	h.Set(constants.HeaderXRequestID, "req-123")
	w := perform(engine, http.MethodGet, "/", h)
	assert.Equal(t, "req-123", w.Body.String())

	w = perform(engine, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS("http://shop.test/", "", " https://admin.shop.test "))
	engine.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin", http.MethodGet, "http://shop.test", http.StatusOK, "http://shop.test"},
		{"trimmed origin", http.MethodGet, "https://admin.shop.test", http.StatusOK, "https://admin.shop.test"},
		{"foreign origin", http.MethodGet, "https://evil.test", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://shop.test", http.StatusNoContent, "http://shop.test"},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			w := perform(engine, tt.method, "/api/products", header)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "Origin", w.Header().Get("Vary"))
		})
	}
}

func TestCORS_Wildcard(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS("*"), SecurityHeaders())
	engine.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(engine, http.MethodGet, "/api/products", http.Header{"Origin": []string{"http://localhost:5173"}})

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestSafeHeaders_RedactsCredentials(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Cookie", "session=abc")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	got := safeHeaders(h)
	assert.Equal(t, "*", got["Authorization"])
	assert.Equal(t, "*", got["Cookie"])
	assert.Equal(t, "application/json, text/plain", got["Accept"])
}
