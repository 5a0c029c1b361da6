package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoNFA(t *testing.T) *automaton.NFA[int, rune] {
	t.Helper()
	n := automaton.NewNFA[int]([]rune("ab"))
	n.SetInitialState(1)
	require.NoError(t, n.MarkAccepting(0))
	require.NoError(t, n.AddTransitions(map[automaton.Key[int, rune]][]int{
		automaton.K(1, 'a'): {0, 1},
		automaton.K(1, 'b'): {0},
		automaton.K(0, 'a'): {1},
	}))
	return n
}

func oddA(t *testing.T) *automaton.DFA[int, rune] {
	t.Helper()
	d := automaton.NewDFA[int]([]rune("ab"))
	require.NoError(t, d.AddStateWithTransitions(1, map[automaton.Key[int, rune]]int{
		automaton.K(1, 'a'): 0,
		automaton.K(1, 'b'): 1,
	}))
	require.NoError(t, d.AddTransitions(map[automaton.Key[int, rune]]int{
		automaton.K(0, 'a'): 1,
		automaton.K(0, 'b'): 0,
	}))
	require.NoError(t, d.MarkAccepting(1))
	return d
}

// failingCache answers every call with err.
type failingCache struct{ err error }

func (f failingCache) Get(context.Context, string, string) (bool, bool, error) {
	return false, false, f.err
}

func (f failingCache) Put(context.Context, string, string, bool) error {
	return f.err
}

func (f failingCache) Purge(context.Context, string) error {
	return f.err
}

func TestRunner_Classify(t *testing.T) {
	r := runner.NewRunner(runner.Exhaustive(demoNFA(t)), runner.WithNamespace("demo"))

	report, err := r.Classify(context.Background(), []string{"bb", "ab", "", "a", "b", "ab", "aab", "ba"})
	require.NoError(t, err)

	assert.Equal(t, "demo", report.Automaton)
	assert.Equal(t, []string{"a", "b", "ab", "aab"}, report.Accepted)
	assert.Equal(t, []string{"", "ba", "bb"}, report.Rejected)
	assert.Equal(t, 7, report.Total(), "duplicates are classified once")
	assert.Zero(t, report.CacheHits)
}

func TestRunner_Deciders_Agree(t *testing.T) {
	n := demoNFA(t)
	batch := []string{"", "a", "b", "aa", "ab", "ba", "bb", "aba", "abab", "abba", "aaab"}

	exhaustive, err := runner.NewRunner(runner.Exhaustive(n)).Classify(context.Background(), batch)
	require.NoError(t, err)
	parallel, err := runner.NewRunner(runner.Parallel(n)).Classify(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, exhaustive.Accepted, parallel.Accepted)
	assert.Equal(t, exhaustive.Rejected, parallel.Rejected)
}

func TestRunner_Deterministic(t *testing.T) {
	r := runner.NewRunner(runner.Deterministic(oddA(t)))
	report, err := r.Classify(context.Background(), []string{"a", "aa", "bab", "abba"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bab"}, report.Accepted)
	assert.Equal(t, []string{"aa", "abba"}, report.Rejected)
}

func TestRunner_Cache(t *testing.T) {
	cache := memory.NewCache()
	calls := 0
	counting := runner.DeciderFunc(func(ctx context.Context, w []rune) (bool, error) {
		calls++
		return len(w)%2 == 1, nil
	})

	var lookups []*domain.CacheEvent
	r := runner.NewRunner(counting,
		runner.WithCache(cache),
		runner.WithNamespace("parity"),
		runner.WithHooks(domain.Hooks{
			OnCache: func(e *domain.CacheEvent) { lookups = append(lookups, e) },
		}),
	)

	first, err := r.Classify(context.Background(), []string{"a", "ab"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Zero(t, first.CacheHits)
	assert.Equal(t, 2, cache.Len("parity"))

	second, err := r.Classify(context.Background(), []string{"a", "ab", "abc"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "only the new word reaches the decider")
	assert.Equal(t, 2, second.CacheHits)
	assert.Equal(t, []string{"a", "abc"}, second.Accepted)

	require.Len(t, lookups, 5)
	assert.Equal(t, "parity", lookups[0].Namespace)
	assert.False(t, lookups[0].Hit)
	assert.True(t, lookups[2].Hit)
}

func TestRunner_CacheFailureFallsBack(t *testing.T) {
	r := runner.NewRunner(runner.Exhaustive(demoNFA(t)), runner.WithCache(failingCache{err: errors.New("down")}))

	report, err := r.Classify(context.Background(), []string{"a", "bb"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, report.Accepted)
	assert.Equal(t, []string{"bb"}, report.Rejected)
}

func TestRunner_Errors(t *testing.T) {
	t.Run("Invalid Word", func(t *testing.T) {
		r := runner.NewRunner(runner.Exhaustive(demoNFA(t)))
		_, err := r.Classify(context.Background(), []string{"a", "abc"})
		assert.ErrorIs(t, err, domain.ErrInvalidWord)
		assert.Contains(t, err.Error(), `"abc"`)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := runner.NewRunner(runner.Exhaustive(demoNFA(t)))
		_, err := r.Classify(ctx, []string{"a"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunner_Decide(t *testing.T) {
	r := runner.NewRunner(runner.Exhaustive(demoNFA(t)))
	ok, err := r.Decide(context.Background(), "ab")
	require.NoError(t, err)
	assert.True(t, ok)
}
