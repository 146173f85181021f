package ports

import "context"

// StatsSource reports resource usage of the running process.
// Working-set readings are inherently racy best-effort snapshots and
// carry no consistency guarantee across calls.
type StatsSource interface {
	// WorkingSet returns the process's current resident memory in bytes,
	// measured at call time, never cached.
	// Returns domain.ErrUnavailable if the source cannot be read.
	WorkingSet(ctx context.Context) (uint64, error)
}
