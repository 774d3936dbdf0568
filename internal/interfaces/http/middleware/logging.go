package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/localshop/storefront/internal/infrastructure/metrics"
	"github.com/localshop/storefront/internal/shared/constants"
	"github.com/localshop/storefront/internal/shared/logger"
)

// RequestID propagates X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)
		c.Next()
	}
}

// CustomLogger writes one line per request. Callback query strings carry
// the gateway signature, so only the path is logged.
func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
			"request_id", c.GetString(constants.ContextKeyRequestID),
		}
		if userID := c.GetString(constants.ContextKeyUserID); userID != "" {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		logAtStatus(log, status)("http request", args...)
	}
}

// logAtStatus keeps successful traffic at debug so production logs show
// only failures.
func logAtStatus(log logger.Interface, status int) func(msg string, keysAndValues ...any) {
	switch {
	case status >= 500:
		return log.Errorw
	case status >= 400:
		return log.Warnw
	default:
		return log.Debugw
	}
}

// Metrics records request count and latency per route template.
func Metrics(m metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.Request(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
