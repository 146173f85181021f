package logging

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// fallback is returned by FromContext when no logger was stored.
// SetDefault replaces it at startup.
var fallback = slog.Default()

// FromContext returns the logger carried by ctx, or the fallback logger
// when ctx carries none (or is nil).
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return fallback
	}

	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return fallback
	}

	return logger
}

// WithContext returns a copy of ctx carrying the given logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// enrich attaches a single attribute to the context logger and stores
// the enriched logger back on the context.
func enrich(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// WithRequestID returns a context whose logger tags every record with
// the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return enrich(ctx, "request_id", requestID)
}

// WithTraceID returns a context whose logger tags every record with the
// active trace ID, linking log lines to their trace.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return enrich(ctx, "trace_id", traceID)
}

// WithCorrelationID returns a context whose logger tags every record
// with the caller-supplied correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return enrich(ctx, "correlation_id", correlationID)
}

// SetDefault installs logger as both the package fallback and the
// process-wide slog default. Call once during startup.
func SetDefault(logger *slog.Logger) {
	fallback = logger
	slog.SetDefault(logger)
}
