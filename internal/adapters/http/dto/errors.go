// Package dto defines the response shapes of the public API and the
// mapping from domain errors onto HTTP statuses.
package dto

// ErrorResponse is the error envelope for all error responses.
// The public API fixes this shape: a single error field carrying a
// human-readable message. Richer detail (trace IDs, request IDs) travels
// in response headers instead of the body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Canned messages for errors raised by the transport itself rather than
// the quote catalog.
const (
	// MessageInternal is returned when a handler panics or fails unexpectedly.
	MessageInternal = "an internal error occurred"

	// MessageTimeout is returned when a request exceeds its deadline.
	MessageTimeout = "request timed out"

	// MessageUnavailable is returned when a required collaborator cannot be read.
	MessageUnavailable = "service temporarily unavailable"
)

// NewErrorResponse creates an error response carrying the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
