// Package catalog provides the in-memory quote catalog adapter.
// The catalog is constructed once at startup from a fixed seed list and
// never mutated afterwards, so reads need no locking.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/claudeomosa/NETconf25/internal/domain"
	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

// ErrEmptySeed is returned when constructing a catalog with no quotes.
// An empty catalog would make the random pick ill-defined, so emptiness
// must surface at construction and never at query time.
var ErrEmptySeed = errors.New("catalog: seed contains no quotes")

// IntN picks a random index in [0, n). It matches the signature of
// rand.IntN so the process-wide generator is the default source.
type IntN func(n int) int

// Config carries the catalog construction inputs. The zero value
// selects the built-in seed and process-wide randomness.
type Config struct {
	// Quotes seeds the catalog. Nil selects the built-in seed list;
	// an explicitly empty slice is a construction error.
	Quotes []domain.Quote

	// Rand supplies random indices for RandomQuote.
	// Defaults to the process-wide generator. Tests may inject a seeded
	// source to make picks deterministic.
	Rand IntN

	Logger *slog.Logger
}

// Catalog implements ports.QuoteCatalog over a fixed in-memory list.
type Catalog struct {
	quotes []domain.Quote
	intN   IntN
	logger *slog.Logger
}

// New creates a catalog from the configured seed.
// Returns ErrEmptySeed if the effective seed holds no quotes.
func New(cfg Config) (*Catalog, error) {
	quotes := cfg.Quotes
	if quotes == nil {
		quotes = SeedQuotes()
	}

	if len(quotes) == 0 {
		return nil, ErrEmptySeed
	}

	intN := cfg.Rand
	if intN == nil {
		intN = rand.IntN
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Own a private copy so later mutation of the caller's slice cannot
	// reach the catalog.
	owned := make([]domain.Quote, len(quotes))
	copy(owned, quotes)

	return &Catalog{
		quotes: owned,
		intN:   intN,
		logger: logger,
	}, nil
}

// RandomQuote returns one quote chosen uniformly at random.
func (c *Catalog) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	idx := c.intN(len(c.quotes))
	quote := c.quotes[idx]

	c.logger.Log(ctx, logging.LevelTrace, "picked random quote",
		slog.Int("index", idx),
		slog.String("author", quote.Author))

	return &quote, nil
}

// QuotesByTag returns the quotes whose tag sequence contains the given
// tag, preserving catalog order. Matching is case-insensitive and exact:
// the input is lowercased and compared against whole tags, never
// substrings. Returns a *domain.TagNotFoundError carrying the original,
// non-normalized input when nothing matches.
func (c *Catalog) QuotesByTag(ctx context.Context, tag string) ([]domain.Quote, error) {
	normalized := strings.ToLower(tag)

	var matches []domain.Quote

	for _, quote := range c.quotes {
		if quote.HasTag(normalized) {
			matches = append(matches, quote)
		}
	}

	c.logger.Log(ctx, logging.LevelTrace, "filtered quotes by tag",
		slog.String("tag", normalized),
		slog.Int("matches", len(matches)))

	if len(matches) == 0 {
		return nil, domain.NewTagNotFoundError(tag)
	}

	return matches, nil
}

// AllQuotes returns the full catalog in insertion order.
func (c *Catalog) AllQuotes(ctx context.Context) ([]domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "listing catalog",
		slog.Int("size", len(c.quotes)))

	quotes := make([]domain.Quote, len(c.quotes))
	copy(quotes, c.quotes)

	return quotes, nil
}

// Len returns the number of quotes in the catalog.
func (c *Catalog) Len() int {
	return len(c.quotes)
}

// Name and Check make the catalog a ports.HealthChecker.
func (c *Catalog) Name() string {
	return "quote-catalog"
}

// Check reports the catalog healthy when it holds at least one quote.
func (c *Catalog) Check(_ context.Context) error {
	if len(c.quotes) == 0 {
		return errors.New("catalog is empty")
	}

	return nil
}
