package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

const (
	// HeaderCorrelationID tracks one business transaction across service
	// hops, unlike the per-request X-Request-ID.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID keys the correlation ID in the gin context.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates the upstream
// X-Correlation-ID, or mints a UUID v4 when this service is the origin
// of the transaction. Storage mirrors RequestID: response header, gin
// context, request context, context logger.
func CorrelationID() gin.HandlerFunc {
	return identityMiddleware(HeaderCorrelationID, ContextKeyCorrelationID,
		func(ctx context.Context, id string) context.Context {
			return ContextWithCorrelationID(logging.WithCorrelationID(ctx, id), id)
		})
}

// GetCorrelationID reads the correlation ID from the gin context; empty
// when the middleware has not run.
func GetCorrelationID(c *gin.Context) string {
	return ginContextString(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID is GetCorrelationID with "unknown" standing in
// for a missing ID.
func MustGetCorrelationID(c *gin.Context) string {
	if id := GetCorrelationID(c); id != "" {
		return id
	}

	return "unknown"
}
