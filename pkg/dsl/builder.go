package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/automaton"
)

// Builder manages the construction of an NFA over runes.
type Builder[S comparable] struct {
	alphabet  []rune
	opts      []automaton.Option
	initial   *S
	states    []S
	accepting []S
	moves     map[automaton.Key[S, rune]][]S
	order     []automaton.Key[S, rune]
}

// NFA starts a builder over the letters of alphabet.
func NFA[S comparable](alphabet string, opts ...automaton.Option) *Builder[S] {
	return &Builder[S]{
		alphabet: []rune(alphabet),
		opts:     opts,
		moves:    make(map[automaton.Key[S, rune]][]S),
	}
}

// Initial sets the initial state. Without it the zero value of S is used.
func (b *Builder[S]) Initial(s S) *Builder[S] {
	b.initial = &s
	return b
}

// Accept marks states as accepting, registering them.
func (b *Builder[S]) Accept(states ...S) *Builder[S] {
	b.states = append(b.states, states...)
	b.accepting = append(b.accepting, states...)
	return b
}

// State registers s and returns a builder for its transitions.
func (b *Builder[S]) State(s S) *StateBuilder[S] {
	b.states = append(b.states, s)
	return &StateBuilder[S]{builder: b, state: s}
}

// Build creates the automaton. Targets are registered as states, so every
// state only needs to be mentioned once.
func (b *Builder[S]) Build() (*automaton.NFA[S, rune], error) {
	n := automaton.NewNFA[S](b.alphabet, b.opts...)
	if b.initial != nil {
		n.SetInitialState(*b.initial)
	}
	for _, s := range b.states {
		n.AddState(s)
	}
	for _, k := range b.order {
		for _, to := range b.moves[k] {
			n.AddState(to)
		}
	}
	for _, s := range b.accepting {
		if err := n.MarkAccepting(s); err != nil {
			return nil, err
		}
	}
	if err := n.AddTransitions(b.moves); err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return n, nil
}

// StateBuilder adds the transitions of one state.
type StateBuilder[S comparable] struct {
	builder *Builder[S]
	state   S
}

// On adds a move from the current state on letter to each of targets.
// Calling On twice for the same letter merges the targets.
func (sb *StateBuilder[S]) On(letter rune, targets ...S) *StateBuilder[S] {
	k := automaton.K(sb.state, letter)
	if _, seen := sb.builder.moves[k]; !seen {
		sb.builder.order = append(sb.builder.order, k)
	}
	sb.builder.moves[k] = append(sb.builder.moves[k], targets...)
	return sb
}

// State switches to another state.
func (sb *StateBuilder[S]) State(s S) *StateBuilder[S] {
	return sb.builder.State(s)
}

// Build finishes the automaton.
func (sb *StateBuilder[S]) Build() (*automaton.NFA[S, rune], error) {
	return sb.builder.Build()
}
