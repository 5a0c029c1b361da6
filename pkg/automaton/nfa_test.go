package automaton_test

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nfaKey = automaton.Key[int, rune]

// demoNFA: states {0, 1}, initial 1, accepting {0},
// (1,a)->{0,1}, (1,b)->{0}, (0,a)->{1}. (0,b) is absent.
func demoNFA(t *testing.T, reversed bool, opts ...automaton.Option) *automaton.NFA[int, rune] {
	t.Helper()
	n := automaton.NewNFA[int]([]rune("ab"), opts...)
	n.SetInitialState(1)
	require.NoError(t, n.MarkAccepting(0))

	onA := []int{0, 1}
	if reversed {
		onA = []int{1, 0}
	}
	require.NoError(t, n.AddTransitions(map[nfaKey][]int{
		automaton.K(1, 'a'): onA,
		automaton.K(1, 'b'): {0},
		automaton.K(0, 'a'): {1},
	}))
	return n
}

// demoLanguage describes the words demoNFA accepts: non-empty, no "bb",
// and not ending in "ba".
func demoLanguage(w string) bool {
	return w != "" && !strings.Contains(w, "bb") && !strings.HasSuffix(w, "ba")
}

func TestNFA_AcceptsExhaustive_Scenario(t *testing.T) {
	n := demoNFA(t, false)

	tests := []struct {
		word string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"ab", true}, // (0,b) is stuck but 1 -b-> 0 accepts
		{"", false},  // initial state 1 is not accepting
		{"bb", false},
		{"ba", false},
		{"aab", true},
		{"abab", true},
	}

	for _, tt := range tests {
		t.Run("Word_"+tt.word, func(t *testing.T) {
			got, err := n.AcceptsExhaustive([]rune(tt.word))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNFA_AcceptsExhaustive_MatchesLanguage(t *testing.T) {
	n := demoNFA(t, false)
	for _, w := range words.Enumerate([]rune("ab"), 10) {
		got, err := n.AcceptsExhaustive(w)
		require.NoError(t, err)
		require.Equal(t, demoLanguage(string(w)), got, "word %q", string(w))
	}
}

func TestNFA_AcceptsExhaustive_OrderInvariant(t *testing.T) {
	forward := demoNFA(t, false)
	backward := demoNFA(t, true)

	for _, w := range words.Enumerate([]rune("ab"), 9) {
		a, err := forward.AcceptsExhaustive(w)
		require.NoError(t, err)
		b, err := backward.AcceptsExhaustive(w)
		require.NoError(t, err)
		require.Equal(t, a, b, "word %q", string(w))
	}
}

func TestNFA_AcceptsExhaustive_Idempotent(t *testing.T) {
	n := demoNFA(t, false)
	w := []rune("aababa")
	first, err := n.AcceptsExhaustive(w)
	require.NoError(t, err)
	for range 5 {
		again, err := n.AcceptsExhaustive(w)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNFA_AcceptsExhaustive_EmptyWord(t *testing.T) {
	n := demoNFA(t, false)
	ok, err := n.AcceptsExhaustive(nil)
	require.NoError(t, err)
	assert.False(t, ok)

	n.SetInitialState(0)
	ok, err = n.AcceptsExhaustive(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNFA_AcceptsExhaustive_InvalidWord(t *testing.T) {
	n := demoNFA(t, false)
	_, err := n.AcceptsExhaustive([]rune("abc"))
	assert.ErrorIs(t, err, domain.ErrInvalidWord)
}

func TestNFA_AcceptsExhaustive_BoundedWork(t *testing.T) {
	// Every state moves to every state and nothing accepts: the choice tree
	// has 8^40 leaves, but only 8*41 distinct (state, position) nodes.
	const states = 8
	var visited int
	n := automaton.NewNFA[int]([]rune("x"), automaton.WithHooks(domain.Hooks{
		OnQuery: func(e *domain.QueryEvent) { visited = e.Visited },
	}))
	all := make([]int, states)
	for i := range all {
		all[i] = i
		n.AddState(i)
	}
	batch := make(map[nfaKey][]int, states)
	for _, s := range all {
		batch[automaton.K(s, 'x')] = all
	}
	require.NoError(t, n.AddTransitions(batch))

	ok, err := n.AcceptsExhaustive([]rune(strings.Repeat("x", 40)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.LessOrEqual(t, visited, states*41*states)
}

func TestNFA_AddTransitions(t *testing.T) {
	newNFA := func() *automaton.NFA[int, rune] {
		n := automaton.NewNFA[int]([]rune("ab"))
		n.AddState(1)
		require.NoError(t, n.AddTransitions(map[nfaKey][]int{automaton.K(0, 'a'): {1}}))
		return n
	}

	tests := []struct {
		name    string
		batch   map[nfaKey][]int
		wantErr error
	}{
		{"Empty Successor Set", map[nfaKey][]int{automaton.K(0, 'b'): {}}, domain.ErrEmptySuccessorSet},
		{"Unknown Successor", map[nfaKey][]int{automaton.K(0, 'b'): {0, 4}}, domain.ErrUnknownState},
		{"Unknown Source", map[nfaKey][]int{automaton.K(4, 'b'): {0}}, domain.ErrUnknownState},
		{"Unknown Letter", map[nfaKey][]int{automaton.K(0, 'c'): {0}}, domain.ErrUnknownLetter},
		{"Redefinition", map[nfaKey][]int{automaton.K(0, 'a'): {0}}, domain.ErrDuplicateTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNFA()
			err := n.AddTransitions(tt.batch)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, n.Edges(), 1)
		})
	}

	t.Run("First Problem In Registration Order", func(t *testing.T) {
		for range 50 {
			n := newNFA()
			err := n.AddTransitions(map[nfaKey][]int{
				automaton.K(1, 'c'): {0},
				automaton.K(1, 'a'): {},
				automaton.K(0, 'a'): {0},
			})
			var dup *domain.DuplicateTransitionError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, 0, dup.State)
			assert.Equal(t, 'a', dup.Letter)
		}
	})

	t.Run("Duplicates Collapse", func(t *testing.T) {
		n := newNFA()
		require.NoError(t, n.AddTransitions(map[nfaKey][]int{automaton.K(1, 'b'): {0, 1, 0}}))
		assert.Equal(t, []int{0, 1}, n.Successors(1, 'b'))
		assert.Nil(t, n.Successors(1, 'a'))
	})
}

func TestNFA_Edges(t *testing.T) {
	n := demoNFA(t, false)
	assert.Equal(t, []automaton.Edge[int, rune]{
		{From: 0, Letter: 'a', To: []int{1}},
		{From: 1, Letter: 'a', To: []int{0, 1}},
		{From: 1, Letter: 'b', To: []int{0}},
	}, n.Edges())
}

func TestNFA_AcceptsParallel(t *testing.T) {
	n := demoNFA(t, false)
	ctx := context.Background()

	for _, w := range words.Enumerate([]rune("ab"), 9) {
		want, err := n.AcceptsExhaustive(w)
		require.NoError(t, err)
		got, err := n.AcceptsParallel(ctx, w)
		require.NoError(t, err)
		require.Equal(t, want, got, "word %q", string(w))
	}
}

func TestNFA_AcceptsParallel_Cancelled(t *testing.T) {
	n := demoNFA(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.AcceptsParallel(ctx, []rune("aaaa"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = n.AcceptsParallel(ctx, []rune("aaz"))
	assert.ErrorIs(t, err, domain.ErrInvalidWord)
}

func TestNFA_AcceptsSampled(t *testing.T) {
	n := demoNFA(t, false)
	rng := rand.New(rand.NewPCG(42, 42))

	t.Run("Acceptance Is Sound", func(t *testing.T) {
		for _, w := range words.Enumerate([]rune("ab"), 7) {
			exhaustive, err := n.AcceptsExhaustive(w)
			require.NoError(t, err)
			for range 4 {
				sampled, err := n.AcceptsSampled(w, rng)
				require.NoError(t, err)
				if sampled {
					require.True(t, exhaustive, "sampled run accepted %q", string(w))
				}
			}
		}
	})

	t.Run("Can Miss Accepted Words", func(t *testing.T) {
		// "aa" is accepted (1 -a-> 1 -a-> 0) but a run choosing 0 first
		// continues 0 -a-> 1 and rejects.
		outcomes := map[bool]int{}
		for range 200 {
			ok, err := n.AcceptsSampled([]rune("aa"), rng)
			require.NoError(t, err)
			outcomes[ok]++
		}
		assert.Positive(t, outcomes[true])
		assert.Positive(t, outcomes[false])
	})

	t.Run("Stuck Is Not An Error", func(t *testing.T) {
		run, err := n.TraceSampled([]rune("bb"), rng)
		require.NoError(t, err)
		assert.True(t, run.Stuck)
		assert.False(t, run.Accepted)
		assert.Equal(t, 0, run.Final)
		assert.Len(t, run.Steps, 1)
	})
}

func TestNFA_TraceSampled_FollowsTransitions(t *testing.T) {
	n := demoNFA(t, false)
	rng := rand.New(rand.NewPCG(1, 9))

	run, err := n.TraceSampled([]rune("aaaa"), rng)
	require.NoError(t, err)
	require.False(t, run.Stuck)
	for _, step := range run.Steps {
		assert.True(t, slices.Contains(n.Successors(step.From, step.Letter), step.To))
	}
	assert.Equal(t, run.Steps[len(run.Steps)-1].To, run.Final)
}
