// Package ports declares the contracts between the application core and
// its adapters. The application layer depends on these interfaces alone;
// the concrete implementations live under internal/adapters.
//
// Conventions:
//   - blocking operations take a context.Context first
//   - methods speak domain types, never adapter DTOs
//   - failures surface as domain errors (ErrNotFound, ErrUnavailable)
//   - each interface covers a single adapter concern
package ports

import (
	"context"

	"github.com/claudeomosa/NETconf25/internal/domain"
)

// QuoteCatalog is the read-only contract over the quote collection.
// The catalog is fixed at startup and never mutated, so implementations
// serve unlimited concurrent readers without locking.
type QuoteCatalog interface {
	// RandomQuote returns one quote chosen uniformly at random.
	// The catalog is guaranteed non-empty by construction, so a failure
	// here indicates a broken invariant rather than a user condition.
	RandomQuote(ctx context.Context) (*domain.Quote, error)

	// QuotesByTag returns the quotes whose tag sequence contains the
	// given tag, matched case-insensitively, preserving catalog order.
	// Returns domain.ErrNotFound (a *domain.TagNotFoundError carrying
	// the original input) when no quote matches.
	QuotesByTag(ctx context.Context, tag string) ([]domain.Quote, error)

	// AllQuotes returns the full catalog in insertion order.
	AllQuotes(ctx context.Context) ([]domain.Quote, error)
}
