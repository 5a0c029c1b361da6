package ports

import "context"

// VerdictCache remembers acceptance verdicts so that repeated queries for
// the same automaton and word skip the search.
//
// Verdicts are grouped by namespace, which identifies the automaton. A
// namespace must change whenever the automaton it names changes.
type VerdictCache interface {
	// Get returns the cached verdict for word. found is false on a miss.
	Get(ctx context.Context, namespace, word string) (accepted, found bool, err error)

	// Put stores the verdict for word.
	Put(ctx context.Context, namespace, word string, accepted bool) error

	// Purge drops every verdict of namespace.
	Purge(ctx context.Context, namespace string) error
}
