package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/claudeomosa/NETconf25/internal/domain"
	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

// TraceIDHeader carries the OpenTelemetry trace ID on error responses. The
// response body is reserved for the public error envelope.
const TraceIDHeader = "X-Trace-ID"

// GetTraceID extracts the current trace ID from the request context.
// Returns an empty string when no trace is recording.
func GetTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.SpanContext().HasTraceID() {
		return ""
	}

	return span.SpanContext().TraceID().String()
}

// MapDomainError turns a domain error into a status code and envelope.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		// Not-found messages are part of the public contract and pass
		// through verbatim.
		return http.StatusNotFound, NewErrorResponse(err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, NewErrorResponse(MessageTimeout)

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(MessageUnavailable)

	default:
		// Unrecognized errors must not leak their text to callers.
		return http.StatusInternalServerError, NewErrorResponse(MessageInternal)
	}
}

// HandleError maps a domain error to an HTTP response and writes it.
// The trace ID, when present, travels in the X-Trace-ID header so the body
// stays on the public envelope shape.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)

	traceID := GetTraceID(c)
	if traceID != "" {
		c.Header(TraceIDHeader, traceID)
	}

	// Log failures the envelope deliberately hides
	if status >= http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("request failed",
			slog.Int("status", status),
			slog.String("error", err.Error()),
			slog.String("trace_id", traceID),
		)
	}

	c.JSON(status, errResp)
}
