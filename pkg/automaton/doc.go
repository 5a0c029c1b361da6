/*
Package automaton implements finite automata over a finite alphabet and decides whether a
word belongs to their language.

A Skeleton carries the alphabet, the states, the initial state and the accepting states.
DFA and NFA each compose a Skeleton with their own transition relation: a DFA maps a
(state, letter) pair to one successor, an NFA to a set of successors.

# Building

Automata are built in memory, then queried. The initial state is the zero value of the
state type and can be moved with SetInitialState.

	d := automaton.NewDFA[int]([]rune("ab"))
	d.AddState(1)
	_ = d.MarkAccepting(1)
	_ = d.AddTransitions(map[automaton.Key[int, rune]]int{
		automaton.K(0, 'a'): 1, automaton.K(0, 'b'): 0,
		automaton.K(1, 'a'): 0, automaton.K(1, 'b'): 1,
	})

Construction errors (unknown states or letters, redefined pairs, incomplete deterministic
states) are reported immediately and leave the automaton unchanged.

# Querying

  - DFA.Accepts walks the single path in O(len(word)).
  - NFA.AcceptsExhaustive searches every choice depth-first and stops at the first
    accepting run. A missing pair makes a branch reject ("stuck"), never an error.
  - NFA.AcceptsParallel is the same decision, fanned out over goroutines.
  - NFA.AcceptsSampled takes one random run. It can prove acceptance but never rejection.

Queries never modify the automaton.
*/
package automaton
