package automaton

import (
	"io"
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// Option configures an automaton at creation.
type Option func(*settings)

type settings struct {
	name   string
	logger *slog.Logger
	hooks  domain.Hooks
}

// WithName labels the automaton in logs and emitted events.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger sets a structured logger. Construction is logged at Debug
// level, as are the moves of Trace and TraceSampled.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *settings) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.name != "" {
		s.logger = s.logger.With("automaton", s.name)
	}
	return s
}
