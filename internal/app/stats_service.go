package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claudeomosa/NETconf25/internal/ports"
)

const bytesPerMegabyte = 1024 * 1024

// StatsService reports process-level statistics.
type StatsService struct {
	source ports.StatsSource
	logger *slog.Logger
}

// StatsServiceConfig carries the StatsService dependencies.
type StatsServiceConfig struct {
	Source ports.StatsSource
	Logger *slog.Logger
}

// NewStatsService wires the service. Panics if Source is nil; a nil
// Logger falls back to slog.Default().
func NewStatsService(cfg StatsServiceConfig) *StatsService {
	if cfg.Source == nil {
		panic("StatsService: Source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsService{
		source: cfg.Source,
		logger: logger,
	}
}

// GetWorkingSet returns the process's current working set formatted as
// whole megabytes with a unit suffix, e.g. "42 MB". The reading is taken
// live on every call and reports at least 1 MB so the value is always a
// positive integer.
func (s *StatsService) GetWorkingSet(ctx context.Context) (string, error) {
	bytes, err := s.source.WorkingSet(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read working set",
			slog.Any("error", err),
		)

		return "", err
	}

	megabytes := bytes / bytesPerMegabyte
	if megabytes == 0 {
		megabytes = 1
	}

	s.logger.InfoContext(ctx, "read process stats",
		slog.Uint64("working_set_mb", megabytes),
	)

	return fmt.Sprintf("%d MB", megabytes), nil
}
