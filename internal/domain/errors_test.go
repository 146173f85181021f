package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrNotFound, ErrUnavailable)
	assert.NotErrorIs(t, ErrUnavailable, ErrNotFound)
}

func TestTagNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		tag         string
		expectedMsg string
	}{
		{
			name:        "plain tag",
			tag:         "wisdom",
			expectedMsg: "No quotes found with tag 'wisdom'",
		},
		{
			name:        "original casing is echoed back",
			tag:         "Programming",
			expectedMsg: "No quotes found with tag 'Programming'",
		},
		{
			name:        "unusual characters pass through unvalidated",
			tag:         "c++ & <scripts>",
			expectedMsg: "No quotes found with tag 'c++ & <scripts>'",
		},
		{
			name:        "empty tag",
			tag:         "",
			expectedMsg: "No quotes found with tag ''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTagNotFoundError(tt.tag)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var tagNotFound *TagNotFoundError
			require.ErrorAs(t, err, &tagNotFound)
			assert.Equal(t, tt.tag, tagNotFound.Tag)
		})
	}
}

func TestTagNotFoundError_Unwrap(t *testing.T) {
	err := NewTagNotFoundError("philosophy")

	var tagNotFound *TagNotFoundError
	require.ErrorAs(t, err, &tagNotFound)
	assert.Equal(t, ErrNotFound, tagNotFound.Unwrap())
}

func TestUnavailableError(t *testing.T) {
	tests := []struct {
		name        string
		resource    string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with reason",
			resource:    "process stats",
			reason:      "procfs not mounted",
			expectedMsg: "process stats unavailable: procfs not mounted",
		},
		{
			name:        "without reason",
			resource:    "process stats",
			reason:      "",
			expectedMsg: "process stats unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnavailableError(tt.resource, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrUnavailable)

			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.resource, unavailable.Resource)
			assert.Equal(t, tt.reason, unavailable.Reason)
		})
	}
}

func TestUnavailableError_Unwrap(t *testing.T) {
	err := NewUnavailableError("process stats", "read failed")

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, ErrUnavailable, unavailable.Unwrap())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		// NotFound
		{"IsNotFound with TagNotFoundError", NewTagNotFoundError("zen"), IsNotFound, true},
		{"IsNotFound with sentinel", ErrNotFound, IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrUnavailable, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		// Unavailable
		{"IsUnavailable with UnavailableError", NewUnavailableError("stats", "read failed"), IsUnavailable, true},
		{"IsUnavailable with sentinel", ErrUnavailable, IsUnavailable, true},
		{"IsUnavailable with wrapped", fmt.Errorf("wrapped: %w", ErrUnavailable), IsUnavailable, true},
		{"IsUnavailable with other error", ErrNotFound, IsUnavailable, false},
		{"IsUnavailable with nil", nil, IsUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	t.Run("deeply wrapped TagNotFoundError", func(t *testing.T) {
		original := NewTagNotFoundError("Stoicism")
		wrapped1 := fmt.Errorf("layer1: %w", original)
		wrapped2 := fmt.Errorf("layer2: %w", wrapped1)
		wrapped3 := fmt.Errorf("layer3: %w", wrapped2)

		assert.True(t, IsNotFound(wrapped3))

		var tagNotFound *TagNotFoundError
		require.ErrorAs(t, wrapped3, &tagNotFound)
		assert.Equal(t, "Stoicism", tagNotFound.Tag)
	})

	t.Run("deeply wrapped UnavailableError", func(t *testing.T) {
		original := NewUnavailableError("process stats", "procfs read failed")
		wrapped := fmt.Errorf("stats: %w", fmt.Errorf("source: %w", original))

		assert.True(t, IsUnavailable(wrapped))

		var unavailable *UnavailableError
		require.ErrorAs(t, wrapped, &unavailable)
		assert.Equal(t, "process stats", unavailable.Resource)
	})
}

func TestQuote_HasTag(t *testing.T) {
	quote := Quote{
		Text:   "Simplicity is the soul of efficiency.",
		Author: "Austin Freeman",
		Tags:   []string{"simplicity", "design"},
	}

	tests := []struct {
		name     string
		tag      string
		expected bool
	}{
		{"present tag", "simplicity", true},
		{"second tag", "design", true},
		{"absent tag", "humor", false},
		{"exact match only, no substring", "simpl", false},
		{"case sensitive as stored", "Simplicity", false},
		{"empty tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, quote.HasTag(tt.tag))
		})
	}
}

func TestQuote_HasTag_EmptyTagSequence(t *testing.T) {
	quote := Quote{Text: "untagged", Author: "anon"}

	assert.False(t, quote.HasTag("anything"))
}
