package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// SimpleTimeout returns middleware that sets a deadline on the request
// context without attempting to abort on timeout. Handlers must check
// ctx.Done() and surface the expired deadline themselves; the error mapper
// turns context.DeadlineExceeded into a 503 with the timeout message.
//
// Gin contexts are not safe for concurrent writes, so there is no
// watchdog-goroutine variant that force-aborts slow handlers.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
