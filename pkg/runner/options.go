package runner

import (
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithCache memoizes verdicts in cache. Cache failures are logged and the
// word is decided by the automaton instead.
func WithCache(cache ports.VerdictCache) Option {
	return func(r *Runner) {
		r.Cache = cache
	}
}

// WithNamespace sets the cache namespace. It should identify the automaton
// so verdicts of different automata never mix.
func WithNamespace(namespace string) Option {
	return func(r *Runner) {
		r.Namespace = namespace
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHooks registers observability callbacks for cache lookups.
func WithHooks(hooks domain.Hooks) Option {
	return func(r *Runner) {
		r.Hooks = r.Hooks.Merge(hooks)
	}
}
