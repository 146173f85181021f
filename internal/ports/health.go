package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker reports a Register call reusing an existing name.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that report their own
// health. Adapters register themselves with the HealthRegistry at
// startup.
type HealthChecker interface {
	// Name identifies the component in readiness responses. Names must
	// be unique within a registry.
	Name() string

	// Check returns nil when the component is serviceable. It must
	// honor context cancellation; the registry runs it under the
	// request deadline.
	Check(ctx context.Context) error
}

// HealthRegistry fans a readiness query out to every registered
// component.
type HealthRegistry interface {
	// Register adds a checker. It fails with ErrDuplicateChecker when
	// the name is taken, and is meant to be called at startup.
	Register(checker HealthChecker) error

	// CheckAll runs every registered check concurrently under ctx and
	// aggregates the outcomes.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the verdict of a health check.
type HealthStatus string

const (
	// HealthStatusHealthy means every check passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy means at least one check failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult aggregates one readiness pass over all components.
type HealthResult struct {
	// Status is unhealthy if any single check failed.
	Status HealthStatus `json:"status"`

	// Checks holds the per-component outcomes keyed by checker name.
	Checks map[string]*CheckResult `json:"checks"`

	// Timestamp is when the pass started.
	Timestamp time.Time `json:"timestamp"`
}

// CheckResult is the outcome of one component's check.
type CheckResult struct {
	Status HealthStatus `json:"status"`

	// Message carries the failure detail; empty when healthy.
	Message string `json:"message,omitempty"`

	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is the mutex-guarded HealthRegistry used by the
// service.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers: make([]HealthChecker, 0),
	}
}

// Register adds a checker, rejecting duplicate names.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every registered check in its own goroutine and folds
// the outcomes into a single result. A check that outlives ctx still
// counts; respecting the deadline is the checker's job.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	// Each goroutine writes only its own slot.
	outcomes := make([]*CheckResult, len(checkers))

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			outcomes[i] = runCheck(ctx, checker)
		}()
	}

	wg.Wait()

	for i, checker := range checkers {
		result.Checks[checker.Name()] = outcomes[i]
		if outcomes[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}

func runCheck(ctx context.Context, checker HealthChecker) *CheckResult {
	start := time.Now()
	err := checker.Check(ctx)

	outcome := &CheckResult{
		Status:   HealthStatusHealthy,
		Duration: time.Since(start),
	}

	if err != nil {
		outcome.Status = HealthStatusUnhealthy
		outcome.Message = err.Error()
	}

	return outcome
}
