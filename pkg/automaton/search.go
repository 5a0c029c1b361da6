package automaton

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// errAccepted stops sibling branches once one of them accepts.
var errAccepted = errors.New("accepting path found")

// node is a vertex of the choice tree: a state reached after reading
// word[:pos].
type node[S comparable] struct {
	state S
	pos   int
}

// search explores the choice tree depth-first. Nodes proven to reject are
// remembered, so each (state, position) pair is expanded at most once.
type search[S, L comparable] struct {
	nfa     *NFA[S, L]
	word    []L
	ctx     context.Context
	dead    map[node[S]]struct{}
	visited int
}

func (n *NFA[S, L]) newSearch(ctx context.Context, word []L) *search[S, L] {
	return &search[S, L]{
		nfa:  n,
		word: word,
		ctx:  ctx,
		dead: make(map[node[S]]struct{}),
	}
}

func (s *search[S, L]) cancelled() bool {
	return s.ctx.Err() != nil
}

// accepts reports whether some run from state, reading word[pos:], ends in
// an accepting state. A cancelled search answers false; callers discard it.
func (s *search[S, L]) accepts(state S, pos int) bool {
	if s.cancelled() {
		return false
	}
	s.visited++
	if pos == len(s.word) {
		return s.nfa.IsAccepting(state)
	}

	at := node[S]{state: state, pos: pos}
	if _, ok := s.dead[at]; ok {
		return false
	}

	if next, ok := s.nfa.delta.lookup(state, s.word[pos]); ok {
		for _, succ := range next {
			if s.accepts(succ, pos+1) {
				return true
			}
		}
	}

	if !s.cancelled() {
		s.dead[at] = struct{}{}
	}
	return false
}

// AcceptsExhaustive decides membership: it reports whether at least one
// sequence of nondeterministic choices reads the whole word from the
// initial state and ends in an accepting state. A run that meets an absent
// transition is stuck and rejects; it is not an error. The order of
// successors never changes the answer.
func (n *NFA[S, L]) AcceptsExhaustive(word []L) (bool, error) {
	start := time.Now()
	if err := n.ValidateWord(word); err != nil {
		n.emitQuery(domain.ModeExhaustive, word, false, 0, start, err)
		return false, err
	}

	s := n.newSearch(context.Background(), word)
	accepted := s.accepts(n.initial, 0)
	n.emitQuery(domain.ModeExhaustive, word, accepted, s.visited, start, nil)
	return accepted, nil
}

// AcceptsParallel answers like AcceptsExhaustive but explores the subtree
// of every successor of the first move in its own goroutine. Remaining
// branches are cancelled once one accepts. It returns ctx.Err() if ctx is
// done before an answer is known.
func (n *NFA[S, L]) AcceptsParallel(ctx context.Context, word []L) (bool, error) {
	start := time.Now()
	if err := n.ValidateWord(word); err != nil {
		n.emitQuery(domain.ModeParallel, word, false, 0, start, err)
		return false, err
	}
	if len(word) == 0 {
		accepted := n.IsAccepting(n.initial)
		n.emitQuery(domain.ModeParallel, word, accepted, 1, start, nil)
		return accepted, nil
	}

	first, ok := n.delta.lookup(n.initial, word[0])
	if !ok {
		n.emitQuery(domain.ModeParallel, word, false, 1, start, nil)
		return false, nil
	}

	var (
		found   atomic.Bool
		visited atomic.Int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, next := range first {
		g.Go(func() error {
			s := n.newSearch(gctx, word)
			ok := s.accepts(next, 1)
			visited.Add(int64(s.visited))
			if ok {
				found.Store(true)
				return errAccepted
			}
			return nil
		})
	}
	// Branches only fail with errAccepted, which found already records.
	_ = g.Wait()

	accepted := found.Load()
	var err error
	if !accepted {
		err = ctx.Err()
	}
	n.emitQuery(domain.ModeParallel, word, accepted, int(visited.Load())+1, start, err)
	return accepted, err
}
