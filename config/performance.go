package config

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spa-admin/api"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "requestId"
	slowRequest     = 200 * time.Millisecond
)

// PerformanceLogger tags each request with an id, forwards it to the remote
// API through the request context, and logs timing.
func PerformanceLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(api.ContextWithRequestID(c.Request.Context(), id))

		c.Next()

		latency := time.Since(start)
		attrs := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
		}
		logger.Info("request", attrs...)

		if latency > slowRequest {
			logger.Warn("slow request", attrs...)
		}
	}
}
