package automaton

import (
	"log/slog"
	"time"

	"github.com/aretw0/automata/pkg/domain"
)

// Skeleton holds what deterministic and nondeterministic automata share:
// the alphabet, the state set, the initial state and the accepting set.
// It knows nothing about transitions.
//
// Iteration order of Alphabet and States is registration order.
type Skeleton[S, L comparable] struct {
	name string

	letters  []L
	alphabet map[L]struct{}

	states   []S
	stateSet map[S]struct{}

	initial   S
	accepting map[S]struct{}

	logger *slog.Logger
	hooks  domain.Hooks
}

func newSkeleton[S, L comparable](alphabet []L, opts []Option) *Skeleton[S, L] {
	cfg := applyOptions(opts)
	sk := &Skeleton[S, L]{
		name:      cfg.name,
		alphabet:  make(map[L]struct{}, len(alphabet)),
		stateSet:  make(map[S]struct{}),
		accepting: make(map[S]struct{}),
		logger:    cfg.logger,
		hooks:     cfg.hooks,
	}
	for _, l := range alphabet {
		sk.addLetter(l)
	}

	// The zero value is the conventional initial state (0 for integer states).
	var initial S
	sk.initial = initial
	sk.AddState(initial)
	return sk
}

// Name returns the label given with WithName.
func (sk *Skeleton[S, L]) Name() string { return sk.name }

// Initial returns the initial state.
func (sk *Skeleton[S, L]) Initial() S { return sk.initial }

// Alphabet returns a copy of the alphabet.
func (sk *Skeleton[S, L]) Alphabet() []L {
	return append([]L(nil), sk.letters...)
}

// States returns a copy of the state set.
func (sk *Skeleton[S, L]) States() []S {
	return append([]S(nil), sk.states...)
}

// Accepting returns the accepting states.
func (sk *Skeleton[S, L]) Accepting() []S {
	out := make([]S, 0, len(sk.accepting))
	for _, s := range sk.states {
		if _, ok := sk.accepting[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// HasState reports whether s is registered.
func (sk *Skeleton[S, L]) HasState(s S) bool {
	_, ok := sk.stateSet[s]
	return ok
}

// HasLetter reports whether l belongs to the alphabet.
func (sk *Skeleton[S, L]) HasLetter(l L) bool {
	_, ok := sk.alphabet[l]
	return ok
}

// IsAccepting reports whether s is an accepting state.
func (sk *Skeleton[S, L]) IsAccepting(s S) bool {
	_, ok := sk.accepting[s]
	return ok
}

// AddState registers s. Adding a known state is a no-op.
func (sk *Skeleton[S, L]) AddState(s S) {
	if sk.HasState(s) {
		return
	}
	sk.stateSet[s] = struct{}{}
	sk.states = append(sk.states, s)
	sk.logger.Debug("state added", "state", s)
}

// SetInitialState registers s if needed and makes it the initial state.
// The previous initial state stays registered.
func (sk *Skeleton[S, L]) SetInitialState(s S) {
	sk.AddState(s)
	sk.initial = s
	sk.logger.Debug("initial state set", "state", s)
}

// MarkAccepting adds s to the accepting set. The state must already exist.
func (sk *Skeleton[S, L]) MarkAccepting(s S) error {
	if !sk.HasState(s) {
		return &domain.UnknownStateError{State: s}
	}
	sk.accepting[s] = struct{}{}
	sk.logger.Debug("state marked accepting", "state", s)
	return nil
}

func (sk *Skeleton[S, L]) addLetter(l L) {
	if sk.HasLetter(l) {
		return
	}
	sk.alphabet[l] = struct{}{}
	sk.letters = append(sk.letters, l)
}

// ValidateWord checks that every letter of word is in the alphabet.
func (sk *Skeleton[S, L]) ValidateWord(word []L) error {
	for i, l := range word {
		if !sk.HasLetter(l) {
			return &domain.InvalidWordError{Letter: l, Position: i}
		}
	}
	return nil
}

func (sk *Skeleton[S, L]) emitStep(mode domain.Mode, pos int, from S, letter L, to S, stuck bool) {
	if sk.hooks.OnStep == nil {
		return
	}
	e := &domain.StepEvent{
		Automaton: sk.name,
		Mode:      mode,
		Position:  pos,
		From:      from,
		Letter:    letter,
		Stuck:     stuck,
	}
	if !stuck {
		e.To = to
	}
	sk.hooks.OnStep(e)
}

func (sk *Skeleton[S, L]) emitQuery(mode domain.Mode, word []L, accepted bool, visited int, start time.Time, err error) {
	if sk.hooks.OnQuery == nil {
		return
	}
	sk.hooks.OnQuery(&domain.QueryEvent{
		Automaton:  sk.name,
		Mode:       mode,
		WordLength: len(word),
		Accepted:   accepted,
		Visited:    visited,
		Duration:   time.Since(start),
		Err:        err,
	})
}
