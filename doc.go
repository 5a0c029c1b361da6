/*
Package automata models finite automata over a finite alphabet and decides whether a word belongs to an automaton's language.

The engine lives in pkg/automaton. A DFA walks a single path and answers in time linear in the word. An NFA maps each (state, letter) pair to a set of successors and answers with an exhaustive search over (state, position) nodes that stops at the first accepting run.

# Concept

An automaton is built in memory, validated as it grows, and then queried. Construction errors (unknown states or letters, missing or redefined transitions) are typed errors returned at the call that caused them, and a rejected batch leaves the automaton unchanged. Queries never mutate the automaton.

# Key Features

  - Deterministic and nondeterministic acceptance with identical typed-error reporting.
  - Exhaustive NFA search with memoized dead nodes, so work is bounded by states times word length.
  - An errgroup-based parallel search that always agrees with the sequential one.
  - A sampled random walk, documented as unsound for rejection, for tracing.
  - Batch classification with an optional Redis or in-memory verdict cache (pkg/runner).

# Usage

	n := automaton.NewNFA[int]([]rune("ab"))
	n.SetInitialState(1)
	_ = n.MarkAccepting(0)
	_ = n.AddTransitions(map[automaton.Key[int, rune]][]int{
		automaton.K(1, 'a'): {0, 1},
		automaton.K(1, 'b'): {0},
		automaton.K(0, 'a'): {1},
	})

	ok, err := n.AcceptsExhaustive([]rune("ab"))

The automata command (cmd/automata) classifies random batches against the shipped sample automata, checks single words with a step trace and prints Mermaid diagrams.
*/
package automata
