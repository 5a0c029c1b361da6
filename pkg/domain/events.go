package domain

import "time"

// Mode identifies which acceptance procedure answered a query.
type Mode string

const (
	ModeDeterministic Mode = "deterministic" // Single path over a DFA
	ModeExhaustive    Mode = "exhaustive"    // Depth-first search over every NFA choice
	ModeParallel      Mode = "parallel"      // Exhaustive search fanned out per first-step successor
	ModeSampled       Mode = "sampled"       // One random NFA run; unsound for rejection
)

// StepEvent reports a single move of a traversal.
type StepEvent struct {
	Automaton string `json:"automaton,omitempty"`
	Mode      Mode   `json:"mode"`
	Position  int    `json:"position"`
	From      any    `json:"from"`
	Letter    any    `json:"letter"`
	To        any    `json:"to,omitempty"`

	// Stuck is set when no transition exists for (From, Letter).
	Stuck bool `json:"stuck,omitempty"`
}

// QueryEvent reports the outcome of an acceptance query.
type QueryEvent struct {
	Automaton  string        `json:"automaton,omitempty"`
	Mode       Mode          `json:"mode"`
	WordLength int           `json:"word_length"`
	Accepted   bool          `json:"accepted"`
	Visited    int           `json:"visited"` // Search nodes (state, position) expanded
	Duration   time.Duration `json:"duration"`
	Err        error         `json:"-"`
}

// CacheEvent reports a verdict cache lookup made on behalf of a query.
type CacheEvent struct {
	Namespace string `json:"namespace"`
	Hit       bool   `json:"hit"`
}

// Hooks defines callbacks for engine observability.
// Any field may be nil.
type Hooks struct {
	OnStep  func(*StepEvent)
	OnQuery func(*QueryEvent)
	OnCache func(*CacheEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnStep:  chain(h.OnStep, other.OnStep),
		OnQuery: chain(h.OnQuery, other.OnQuery),
		OnCache: chain(h.OnCache, other.OnCache),
	}
}

func chain[E any](first, second func(*E)) func(*E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(e *E) {
		first(e)
		second(e)
	}
}
