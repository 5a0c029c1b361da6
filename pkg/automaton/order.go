package automaton

import (
	"cmp"
	"fmt"
	"slices"
)

// rank maps registered values to their registration index. Values that
// were never registered rank after all registered ones and tie-break on
// their printed form, so a batch is always checked in the same order.
type rank[T comparable] map[T]int

func newRank[T comparable](registered []T) rank[T] {
	r := make(rank[T], len(registered))
	for i, v := range registered {
		r[v] = i
	}
	return r
}

func (r rank[T]) compare(a, b T) int {
	ia, okA := r[a]
	ib, okB := r[b]
	switch {
	case okA && okB:
		return cmp.Compare(ia, ib)
	case okA:
		return -1
	case okB:
		return 1
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// orderedKeys returns the keys of a transition batch sorted by source
// state, then letter.
func orderedKeys[S, L comparable, V any](sk *Skeleton[S, L], batch map[Key[S, L]]V) []Key[S, L] {
	states, letters := newRank(sk.states), newRank(sk.letters)
	keys := make([]Key[S, L], 0, len(batch))
	for k := range batch {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key[S, L]) int {
		if c := states.compare(a.State, b.State); c != 0 {
			return c
		}
		return letters.compare(a.Letter, b.Letter)
	})
	return keys
}

// orderedStates returns the keys of a per-state batch in registration order.
func orderedStates[S, L comparable, V any](sk *Skeleton[S, L], batch map[S]V) []S {
	states := newRank(sk.states)
	keys := make([]S, 0, len(batch))
	for s := range batch {
		keys = append(keys, s)
	}
	slices.SortFunc(keys, states.compare)
	return keys
}
