package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identityMiddleware implements the shared flow behind the request ID
// and correlation ID middleware: take the ID from the named header or
// mint a UUID, expose it on the gin context and response header, and
// let enrich install it on the request context.
func identityMiddleware(header, key string, enrich func(ctx context.Context, id string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(key, id)
		c.Header(header, id)

		if enrich != nil {
			c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))
		}

		c.Next()
	}
}

// ginContextString returns the string stored under key on the gin
// context, or "" when absent or not a string.
func ginContextString(c *gin.Context, key string) string {
	value, exists := c.Get(key)
	if !exists {
		return ""
	}

	s, ok := value.(string)
	if !ok {
		return ""
	}

	return s
}
