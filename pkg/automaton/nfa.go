package automaton

import (
	"github.com/aretw0/automata/pkg/domain"
)

// NFA is a nondeterministic finite automaton without epsilon moves. Each
// (state, letter) pair maps to a non-empty set of successors, or is absent,
// in which case a run reading that letter in that state is stuck.
//
// Like DFA, an NFA must not be modified once queries begin.
type NFA[S, L comparable] struct {
	*Skeleton[S, L]
	delta table[S, L, []S]
}

// NewNFA creates an NFA over alphabet. Its only state is the initial state,
// the zero value of S.
func NewNFA[S, L comparable](alphabet []L, opts ...Option) *NFA[S, L] {
	return &NFA[S, L]{
		Skeleton: newSkeleton[S, L](alphabet, opts),
		delta:    make(table[S, L, []S]),
	}
}

// Successors returns a copy of the successor set of (s, l). A nil result
// means the pair is absent.
func (n *NFA[S, L]) Successors(s S, l L) []S {
	next, ok := n.delta.lookup(s, l)
	if !ok {
		return nil
	}
	return append([]S(nil), next...)
}

// Edges lists the transition relation in registration order.
func (n *NFA[S, L]) Edges() []Edge[S, L] {
	return n.delta.edges(n.Skeleton, func(to []S) []S { return append([]S(nil), to...) })
}

// AddTransitions installs a batch of transitions. Source and successor
// states must be registered and every successor set must be non-empty.
// Duplicate successors inside one set are collapsed. Either every entry is
// installed or none is.
func (n *NFA[S, L]) AddTransitions(transitions map[Key[S, L]][]S) error {
	for _, k := range orderedKeys(n.Skeleton, transitions) {
		to := transitions[k]
		if !n.HasState(k.State) {
			return &domain.UnknownStateError{State: k.State}
		}
		if !n.HasLetter(k.Letter) {
			return &domain.UnknownLetterError{Letter: k.Letter}
		}
		if len(to) == 0 {
			return &domain.EmptySuccessorSetError{State: k.State, Letter: k.Letter}
		}
		for _, s := range to {
			if !n.HasState(s) {
				return &domain.UnknownStateError{State: s}
			}
		}
		if n.delta.has(k.State, k.Letter) {
			return &domain.DuplicateTransitionError{State: k.State, Letter: k.Letter}
		}
	}

	for k, to := range transitions {
		n.delta.set(k.State, k.Letter, dedupe(to))
	}
	n.logger.Debug("transitions installed", "count", len(transitions), "total", n.delta.size())
	return nil
}

func dedupe[S comparable](states []S) []S {
	seen := make(map[S]struct{}, len(states))
	out := make([]S, 0, len(states))
	for _, s := range states {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
