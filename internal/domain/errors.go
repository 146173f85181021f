// Package domain holds the quote model and the business-level error
// kinds. Nothing here knows about HTTP; the adapters decide how each
// kind maps onto a transport.
package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	// ErrNotFound marks lookups over the catalog that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a dependency that cannot be read right now.
	ErrUnavailable = errors.New("unavailable")
)

// TagNotFoundError signals that a tag filter matched zero quotes.
//
// The message embeds the tag exactly as the caller supplied it, before
// any case normalization. Callers of the public API depend on this
// wording, so it must not change.
type TagNotFoundError struct {
	Tag string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("No quotes found with tag '%s'", e.Tag)
}

// Unwrap ties the type to ErrNotFound for errors.Is.
func (e *TagNotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewTagNotFoundError creates a tag miss error carrying the original,
// non-normalized tag.
func NewTagNotFoundError(tag string) error {
	return &TagNotFoundError{Tag: tag}
}

// UnavailableError names which resource cannot be read and why.
type UnavailableError struct {
	Resource string
	Reason   string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s unavailable: %s", e.Resource, e.Reason)
	}

	return e.Resource + " unavailable"
}

// Unwrap ties the type to ErrUnavailable for errors.Is.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError builds an UnavailableError; reason may be empty.
func NewUnavailableError(resource, reason string) error {
	return &UnavailableError{Resource: resource, Reason: reason}
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err is, or wraps, ErrUnavailable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
