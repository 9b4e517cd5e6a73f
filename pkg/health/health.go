package health

import (
	"context"
	"log/slog"
	"sync"

	"github.com/utilkit/utilkit/pkg/logger"
)

// Status is the aggregate or per-check outcome.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// CheckFunc probes a single dependency. A nil return means healthy.
type CheckFunc func(ctx context.Context) error

// Result is the outcome of one named check.
type Result struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates all registered checks. Status is ok only when every
// check passed.
type Report struct {
	Status Status            `json:"status"`
	Checks map[string]Result `json:"checks,omitempty"`
}

// Registry holds named health checks and evaluates them on demand. It is
// safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	names  []string
	checks map[string]CheckFunc
	log    *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report failing checks. Nil loggers are
// ignored.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty check registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		checks: make(map[string]CheckFunc),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a named check. Names must be unique and non-empty.
func (r *Registry) Register(name string, check CheckFunc) error {
	if name == "" || check == nil {
		return ErrInvalidCheck
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checks[name]; exists {
		return ErrDuplicateCheck
	}
	r.names = append(r.names, name)
	r.checks[name] = check
	return nil
}

// Check evaluates every registered check and aggregates the outcomes.
// Failing checks are logged; evaluation continues past failures so the
// report always covers all checks.
func (r *Registry) Check(ctx context.Context) Report {
	r.mu.RLock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	checks := make(map[string]CheckFunc, len(r.checks))
	for name, check := range r.checks {
		checks[name] = check
	}
	r.mu.RUnlock()

	report := Report{Status: StatusOK}
	if len(names) == 0 {
		return report
	}

	report.Checks = make(map[string]Result, len(names))
	for _, name := range names {
		if err := checks[name](ctx); err != nil {
			r.log.ErrorContext(ctx, "health check failed",
				logger.Component("health"), slog.String("check", name), logger.Error(err))
			report.Checks[name] = Result{Status: StatusFailed, Error: err.Error()}
			report.Status = StatusFailed
			continue
		}
		report.Checks[name] = Result{Status: StatusOK}
	}
	return report
}
