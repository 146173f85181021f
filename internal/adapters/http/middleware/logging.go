package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

// healthPrefix marks the operational endpoints kept out of the request log.
const healthPrefix = "/-/"

// ContextLogger returns middleware that seeds the request context with
// the service logger. It must run before any middleware that enriches
// or reads the context logger; without it they fall back to the
// process-wide default.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logging returns middleware that writes one completion record per
// request, leveled by status: 2xx/3xx info, 4xx warn, 5xx error. The
// request start is logged at debug. Paths under /-/ are skipped so
// probe traffic does not drown the log.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, healthPrefix) {
			c.Next()
			return
		}

		start := time.Now()

		path := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			path += "?" + query
		}

		// Carries request_id and correlation_id from the ID middleware.
		logger := logging.FromContext(c.Request.Context())

		logger.Debug("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		logger.Log(c.Request.Context(), completionLevel(c.Writer.Status()), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

// completionLevel maps a response status onto the log level for the
// completion record.
func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
