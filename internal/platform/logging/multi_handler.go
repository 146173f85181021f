package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler fans a record out to several slog handlers. The service
// uses it to write pretty terminal output and a rolling JSON file from
// the same logger.
type MultiHandler struct {
	sinks []slog.Handler
}

// NewMultiHandler creates a handler that forwards to all given sinks.
func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	return &MultiHandler{sinks: sinks}
}

// Enabled reports whether at least one sink accepts records at level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle forwards the record to every sink enabled for its level and
// returns the joined errors of the sinks that failed.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler fixes the value signature
	var errs []error

	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, r.Level) {
			continue
		}

		if err := sink.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs returns a MultiHandler whose sinks all carry attrs.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sinks := make([]slog.Handler, 0, len(h.sinks))
	for _, sink := range h.sinks {
		sinks = append(sinks, sink.WithAttrs(attrs))
	}

	return NewMultiHandler(sinks...)
}

// WithGroup returns a MultiHandler whose sinks all open the group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	sinks := make([]slog.Handler, 0, len(h.sinks))
	for _, sink := range h.sinks {
		sinks = append(sinks, sink.WithGroup(name))
	}

	return NewMultiHandler(sinks...)
}
