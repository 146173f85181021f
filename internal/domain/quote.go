package domain

// Quote is an immutable quotation. Quotes carry no identifier: a
// quote's identity is its position in the catalog for the lifetime of
// the process.
type Quote struct {
	// Text is the quoted text itself. Never empty.
	Text string

	// Author is who said or wrote the quote. Never empty.
	Author string

	// Tags are the lowercase categories associated with the quote.
	// Order is preserved and duplicates are kept as given.
	Tags []string
}

// HasTag reports whether the quote's tag sequence contains tag exactly.
// Callers are expected to lowercase the input first; tags themselves are
// stored lowercase.
func (q Quote) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
