// Package app orchestrates the quote and stats use cases over the ports,
// adding request-scoped logging around each call.
package app

import (
	"context"
	"log/slog"

	"github.com/claudeomosa/NETconf25/internal/domain"
	"github.com/claudeomosa/NETconf25/internal/ports"
)

// QuoteService fronts the quote catalog port for the transport layer.
type QuoteService struct {
	catalog ports.QuoteCatalog
	logger  *slog.Logger
}

// QuoteServiceConfig carries the QuoteService dependencies.
type QuoteServiceConfig struct {
	Catalog ports.QuoteCatalog
	Logger  *slog.Logger
}

// NewQuoteService wires the service. Panics if Catalog is nil; a nil
// Logger falls back to slog.Default().
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Catalog == nil {
		panic("QuoteService: Catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		catalog: cfg.Catalog,
		logger:  logger,
	}
}

// GetRandomQuote returns one quote picked uniformly at random from the
// catalog. The catalog is non-empty by construction, so this only fails
// if an invariant is broken.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	quote, err := s.catalog.RandomQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to pick random quote",
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "picked random quote",
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// GetQuotesByTag returns the quotes matching the given tag in catalog
// order. Matching is case-insensitive; a miss surfaces the catalog's
// TagNotFound error unchanged so the transport can map it.
func (s *QuoteService) GetQuotesByTag(ctx context.Context, tag string) ([]domain.Quote, error) {
	quotes, err := s.catalog.QuotesByTag(ctx, tag)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.WarnContext(ctx, "no quotes matched tag",
				slog.String("tag", tag),
			)
		} else {
			s.logger.ErrorContext(ctx, "failed to filter quotes by tag",
				slog.String("tag", tag),
				slog.Any("error", err),
			)
		}

		return nil, err
	}

	s.logger.InfoContext(ctx, "filtered quotes by tag",
		slog.String("tag", tag),
		slog.Int("matches", len(quotes)),
	)

	return quotes, nil
}

// ListQuotes returns the full catalog in insertion order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.catalog.AllQuotes(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes",
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "listed quotes",
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}
