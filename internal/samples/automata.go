// Package samples builds the automata the command line ships with.
package samples

import (
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/dsl"
)

type key = automaton.Key[int, rune]

// DemoNFA accepts the non-empty words over {a, b} that contain no "bb" and
// do not end in "ba". Its initial state is 1 and (0, b) is undefined.
func DemoNFA(opts ...automaton.Option) (*automaton.NFA[int, rune], error) {
	return dsl.NFA[int]("ab", opts...).
		Initial(1).
		Accept(0).
		State(1).On('a', 0, 1).On('b', 0).
		State(0).On('a', 1).
		Build()
}

// OddA accepts words over {a, b} with an odd number of a's. The alphabet
// starts empty and grows one letter at a time.
func OddA(opts ...automaton.Option) (*automaton.DFA[int, rune], error) {
	d := automaton.NewDFA[int, rune](nil, opts...)
	d.AddState(1)
	if err := d.MarkAccepting(1); err != nil {
		return nil, err
	}
	if err := d.AddLetterWithTransitions('a', map[int]int{0: 1, 1: 0}); err != nil {
		return nil, err
	}
	if err := d.AddLetterWithTransitions('b', map[int]int{0: 0, 1: 1}); err != nil {
		return nil, err
	}
	return d, d.Validate()
}

// OddAThenOddB accepts a^m b^n with m and n odd.
//
//	0: even a's    1: odd a's    2: odd b's (accepting)
//	3: even b's    4: dead
func OddAThenOddB(opts ...automaton.Option) (*automaton.DFA[int, rune], error) {
	d := automaton.NewDFA[int]([]rune("ab"), opts...)
	for s := 1; s <= 4; s++ {
		d.AddState(s)
	}
	rows := []struct{ state, onA, onB int }{
		{0, 1, 4},
		{1, 0, 2},
		{2, 4, 3},
		{3, 4, 2},
		{4, 4, 4},
	}
	for _, r := range rows {
		if err := d.AddStateWithTransitions(r.state, map[key]int{
			automaton.K(r.state, 'a'): r.onA,
			automaton.K(r.state, 'b'): r.onB,
		}); err != nil {
			return nil, err
		}
	}
	if err := d.MarkAccepting(2); err != nil {
		return nil, err
	}
	return d, d.Validate()
}
