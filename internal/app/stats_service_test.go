package app

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeomosa/NETconf25/internal/domain"
)

// fakeStatsSource implements ports.StatsSource for testing.
type fakeStatsSource struct {
	bytes uint64
	err   error
}

func (f *fakeStatsSource) WorkingSet(_ context.Context) (uint64, error) {
	return f.bytes, f.err
}

func TestNewStatsService_PanicsWithoutSource(t *testing.T) {
	assert.Panics(t, func() {
		NewStatsService(StatsServiceConfig{
			Source: nil,
			Logger: slog.Default(),
		})
	})
}

func TestNewStatsService_DefaultsLogger(t *testing.T) {
	svc := NewStatsService(StatsServiceConfig{
		Source: &fakeStatsSource{bytes: 1},
		Logger: nil, // falls back to slog.Default()
	})

	require.NotNil(t, svc)
}

func TestStatsService_GetWorkingSet(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{
			name:     "whole megabytes",
			bytes:    128 * 1024 * 1024,
			expected: "128 MB",
		},
		{
			name:     "fractional megabytes floor",
			bytes:    42*1024*1024 + 900*1024,
			expected: "42 MB",
		},
		{
			name:     "just under two megabytes",
			bytes:    2*1024*1024 - 1,
			expected: "1 MB",
		},
		{
			name:     "exactly one megabyte",
			bytes:    1024 * 1024,
			expected: "1 MB",
		},
		{
			name:     "sub-megabyte reading reports at least one",
			bytes:    512,
			expected: "1 MB",
		},
		{
			name:     "zero reading reports at least one",
			bytes:    0,
			expected: "1 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStatsService(StatsServiceConfig{
				Source: &fakeStatsSource{bytes: tt.bytes},
				Logger: discardLogger(),
			})

			got, err := svc.GetWorkingSet(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStatsService_GetWorkingSet_AlwaysPositiveIntegerPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9][0-9]* MB$`)

	for _, bytes := range []uint64{0, 1, 1024, 1024 * 1024, 7 * 1024 * 1024, 3 << 30} {
		svc := NewStatsService(StatsServiceConfig{
			Source: &fakeStatsSource{bytes: bytes},
			Logger: discardLogger(),
		})

		got, err := svc.GetWorkingSet(context.Background())

		require.NoError(t, err)
		assert.Regexp(t, pattern, got, "reading of %d bytes", bytes)
	}
}

func TestStatsService_GetWorkingSet_SourceFailure(t *testing.T) {
	svc := NewStatsService(StatsServiceConfig{
		Source: &fakeStatsSource{
			err: domain.NewUnavailableError("process stats", "procfs read failed"),
		},
		Logger: discardLogger(),
	})

	got, err := svc.GetWorkingSet(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Empty(t, got)
}
