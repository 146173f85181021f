// Package middleware carries the gin middleware chain: request and
// correlation identity, context-scoped logging, panic recovery, and
// per-request deadlines.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

const (
	// HeaderRequestID names one request within this service.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID keys the request ID in the gin context.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that tags each request with an ID: the
// X-Request-ID header value when the caller sent one, a fresh UUID v4
// otherwise. The ID is echoed in the response header and stored in the
// gin context, the request context, and the context logger.
func RequestID() gin.HandlerFunc {
	return identityMiddleware(HeaderRequestID, ContextKeyRequestID,
		func(ctx context.Context, id string) context.Context {
			return ContextWithRequestID(logging.WithRequestID(ctx, id), id)
		})
}

// GetRequestID reads the request ID from the gin context; empty when
// the middleware has not run.
func GetRequestID(c *gin.Context) string {
	return ginContextString(c, ContextKeyRequestID)
}

// MustGetRequestID is GetRequestID with "unknown" standing in for a
// missing ID.
func MustGetRequestID(c *gin.Context) string {
	if id := GetRequestID(c); id != "" {
		return id
	}

	return "unknown"
}
