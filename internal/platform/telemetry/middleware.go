package telemetry

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

const instrumentationName = "github.com/claudeomosa/NETconf25/telemetry"

// httpMetrics carries the server-side request instruments.
type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newHTTPMetrics() (*httpMetrics, error) {
	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("request duration histogram: %w", err)
	}

	total, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("request counter: %w", err)
	}

	active, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("active requests gauge: %w", err)
	}

	return &httpMetrics{
		duration: duration,
		total:    total,
		active:   active,
	}, nil
}

// measure wraps next in the request instruments. The in-flight gauge is
// keyed by method and route only; the completion instruments also carry
// the status code, which is known only after next returns.
func (m *httpMetrics) measure(c *gin.Context, next gin.HandlerFunc) {
	inFlight := metric.WithAttributes(
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	)

	m.active.Add(c.Request.Context(), 1, inFlight)
	// Deferred so a panicking handler cannot leak the gauge.
	defer m.active.Add(c.Request.Context(), -1, inFlight)

	start := time.Now()
	next(c)

	completed := metric.WithAttributes(
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
		attribute.Int("http.status_code", c.Writer.Status()),
	)

	m.duration.Record(c.Request.Context(), time.Since(start).Seconds(), completed)
	m.total.Add(c.Request.Context(), 1, completed)
}

// Middleware traces and measures every request. otelgin starts the
// server span and runs the rest of the chain inside it; request metrics
// are recorded around that.
func Middleware(serviceName string) gin.HandlerFunc {
	// An instrument creation failure goes to the otel error handler and
	// the middleware degrades to tracing only.
	metrics, err := newHTTPMetrics()
	if err != nil {
		otel.Handle(err)
	}

	tracing := otelgin.Middleware(serviceName)

	return func(c *gin.Context) {
		if metrics == nil {
			tracing(c)
			return
		}

		metrics.measure(c, tracing)
	}
}

// TraceHeader returns middleware that copies the active span's trace ID
// into the response headers and onto the context logger. It must run
// after Middleware so the span context is already on the request, and
// it sets the header before any handler writes the response.
func TraceHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().HasTraceID() {
			traceID := span.SpanContext().TraceID().String()
			c.Header("X-Trace-ID", traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
		}

		c.Next()
	}
}
