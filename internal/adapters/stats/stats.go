// Package stats reads live process resource usage for the stats endpoint.
package stats

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/prometheus/procfs"

	"github.com/claudeomosa/NETconf25/internal/domain"
	"github.com/claudeomosa/NETconf25/internal/platform/logging"
)

// Config carries the stats source dependencies.
type Config struct {
	Logger *slog.Logger
}

// ProcessStats implements ports.StatsSource. It reads the resident set
// size from procfs where the host provides one, and falls back to the
// Go runtime's own memory accounting elsewhere. The probing happens once
// at construction; readings themselves are taken live on every call.
type ProcessStats struct {
	proc   *procfs.Proc
	logger *slog.Logger
}

// New creates a process stats source.
func New(cfg Config) *ProcessStats {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &ProcessStats{logger: logger}

	proc, err := procfs.Self()
	if err != nil {
		logger.Debug("procfs unavailable, using runtime memory accounting",
			slog.String("error", err.Error()))

		return p
	}

	p.proc = &proc

	return p
}

// WorkingSet returns the process's current resident memory in bytes,
// measured at call time and never cached.
func (p *ProcessStats) WorkingSet(ctx context.Context) (uint64, error) {
	if p.proc == nil {
		return p.runtimeWorkingSet(ctx), nil
	}

	stat, err := p.proc.Stat()
	if err != nil {
		return 0, domain.NewUnavailableError("process stats", err.Error())
	}

	rss := stat.ResidentMemory()
	if rss < 0 {
		rss = 0
	}

	p.logger.Log(ctx, logging.LevelTrace, "read working set from procfs",
		slog.Uint64("bytes", uint64(rss)))

	return uint64(rss), nil
}

// runtimeWorkingSet reports the bytes the Go runtime has obtained from
// the OS, the closest runtime-native analog of a working set.
func (p *ProcessStats) runtimeWorkingSet(ctx context.Context) uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	p.logger.Log(ctx, logging.LevelTrace, "read working set from runtime",
		slog.Uint64("bytes", ms.Sys))

	return ms.Sys
}

// Name and Check make the source a ports.HealthChecker.
func (p *ProcessStats) Name() string {
	return "process-stats"
}

// Check verifies a working-set reading can be taken.
func (p *ProcessStats) Check(ctx context.Context) error {
	_, err := p.WorkingSet(ctx)

	return err
}
