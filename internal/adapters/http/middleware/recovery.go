package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/claudeomosa/NETconf25/internal/adapters/http/dto"
	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

// Recovery returns middleware that turns panics into 500 responses.
// The panic value and stack are logged through the context logger; the
// client sees only the canned internal-error envelope. Only
// ContextLogger may run ahead of it, so the panic record still carries
// the request's logger.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			var traceID string
			if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
				traceID = span.SpanContext().TraceID().String()
			}

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("trace_id", traceID),
			)

			// A handler may have started the response before panicking.
			if c.Writer.Written() {
				c.Abort()
				return
			}

			if traceID != "" {
				c.Header(dto.TraceIDHeader, traceID)
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MessageInternal))
		}()

		c.Next()
	}
}
