/*
Package domain contains the vocabulary shared by the automaton engine and its collaborators.

It defines the error taxonomy raised while building and querying automata, and the events
emitted to observability hooks. The package is kept free of I/O and of the generic automaton
types themselves so that adapters (metrics, caches, CLI) can depend on it without
instantiating a particular state or letter type.

# Errors

Every construction or query failure is a typed error that unwraps to a sentinel:

	if errors.Is(err, domain.ErrIncompleteTransition) { ... }

	var undef *domain.UndefinedTransitionError
	if errors.As(err, &undef) {
		log.Printf("automaton has no move for %v at %d", undef.State, undef.Position)
	}

Nondeterministic runs that get stuck are not errors; they are rejected branches.
*/
package domain
