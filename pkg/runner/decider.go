package runner

import (
	"context"

	"github.com/aretw0/automata/pkg/automaton"
)

// Decider answers membership questions for one automaton.
type Decider interface {
	Decide(ctx context.Context, word []rune) (bool, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, word []rune) (bool, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, word []rune) (bool, error) {
	return f(ctx, word)
}

// Deterministic decides with a DFA walk.
func Deterministic[S comparable](d *automaton.DFA[S, rune]) Decider {
	return DeciderFunc(func(_ context.Context, word []rune) (bool, error) {
		return d.Accepts(word)
	})
}

// Exhaustive decides with the sequential exhaustive NFA search.
func Exhaustive[S comparable](n *automaton.NFA[S, rune]) Decider {
	return DeciderFunc(func(ctx context.Context, word []rune) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return n.AcceptsExhaustive(word)
	})
}

// Parallel decides with the goroutine-per-branch NFA search.
func Parallel[S comparable](n *automaton.NFA[S, rune]) Decider {
	return DeciderFunc(n.AcceptsParallel)
}
