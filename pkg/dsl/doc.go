/*
Package dsl provides a fluent builder for automata.

Transitions are collected state by state and installed with a single
AddTransitions call on Build, so the automaton is validated as a whole and
a mistake anywhere leaves nothing half built.

Example usage:

	nfa, err := dsl.NFA[int]("ab").
		Initial(1).
		Accept(0).
		State(1).On('a', 0, 1).On('b', 0).
		State(0).On('a', 1).
		Build()
*/
package dsl
