package middleware

import "context"

// ctxKey keys request-scoped IDs in a context.Context so code below
// the HTTP layer can read them without importing gin.
type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
)

// ContextWithRequestID stores the request ID on the context. The
// request ID middleware calls this for every request.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID stores the correlation ID on the context.
// The correlation ID middleware calls this for every request.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// RequestIDFromContext returns the request ID stored on ctx, or ""
// when none is stored (or ctx is nil).
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the correlation ID stored on ctx,
// or "" when none is stored (or ctx is nil).
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey)
}

func stringValue(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}

	if s, ok := ctx.Value(key).(string); ok {
		return s
	}

	return ""
}
