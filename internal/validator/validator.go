package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
)

// Graph is the read side of a DFA or an NFA.
type Graph[S, L comparable] interface {
	Initial() S
	States() []S
	Alphabet() []L
	IsAccepting(s S) bool
	Edges() []automaton.Edge[S, L]
}

// Report describes the shape of an automaton. State lists keep
// registration order.
type Report[S comparable] struct {
	Reachable   []S
	Unreachable []S // Never entered from the initial state
	Dead        []S // Reachable, but no accepting state is reachable from them
	Missing     int // (state, letter) pairs without a transition
	EmptyLang   bool
}

// Analyze crawls the automaton from its initial state and, backwards, from
// its accepting states.
func Analyze[S, L comparable](g Graph[S, L]) Report[S] {
	forward := make(map[S][]S)
	backward := make(map[S][]S)
	defined := 0
	for _, e := range g.Edges() {
		defined++
		for _, to := range e.To {
			forward[e.From] = append(forward[e.From], to)
			backward[to] = append(backward[to], e.From)
		}
	}

	states := g.States()
	reach := crawl([]S{g.Initial()}, forward)

	var accepting []S
	for _, s := range states {
		if g.IsAccepting(s) {
			accepting = append(accepting, s)
		}
	}
	live := crawl(accepting, backward)

	var r Report[S]
	for _, s := range states {
		switch {
		case !reach[s]:
			r.Unreachable = append(r.Unreachable, s)
		case !live[s]:
			r.Reachable = append(r.Reachable, s)
			r.Dead = append(r.Dead, s)
		default:
			r.Reachable = append(r.Reachable, s)
		}
	}
	r.Missing = len(states)*len(g.Alphabet()) - defined
	r.EmptyLang = !live[g.Initial()]
	return r
}

// crawl is a breadth-first search over adjacency from the seeds.
func crawl[S comparable](seeds []S, adjacency map[S][]S) map[S]bool {
	visited := make(map[S]bool)
	queue := append([]S(nil), seeds...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, next := range adjacency[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// Validate fails when some state can never be entered or when the
// automaton accepts nothing. Dead trap states and missing NFA pairs are
// not errors.
func Validate[S, L comparable](g Graph[S, L]) error {
	r := Analyze(g)

	var errors []string
	if len(r.Unreachable) > 0 {
		errors = append(errors, fmt.Sprintf("unreachable states: %v", r.Unreachable))
	}
	if r.EmptyLang {
		errors = append(errors, "no accepting state is reachable: the language is empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}
