package automaton

import (
	"time"

	"github.com/aretw0/automata/pkg/domain"
)

// DFA is a deterministic finite automaton: every (state, letter) pair maps
// to at most one successor, and a well-built DFA maps every pair.
//
// A DFA is mutable while it is being built and must not be modified once
// queries begin. Queries never mutate it, so concurrent queries are safe.
type DFA[S, L comparable] struct {
	*Skeleton[S, L]
	delta table[S, L, S]
}

// NewDFA creates a DFA over alphabet. Its only state is the initial state,
// the zero value of S.
func NewDFA[S, L comparable](alphabet []L, opts ...Option) *DFA[S, L] {
	return &DFA[S, L]{
		Skeleton: newSkeleton[S, L](alphabet, opts),
		delta:    make(table[S, L, S]),
	}
}

// Transition returns the successor of s on l, if defined.
func (d *DFA[S, L]) Transition(s S, l L) (S, bool) {
	return d.delta.lookup(s, l)
}

// Edges lists the transition relation in registration order.
func (d *DFA[S, L]) Edges() []Edge[S, L] {
	return d.delta.edges(d.Skeleton, func(to S) []S { return []S{to} })
}

// AddStateWithTransitions registers s together with its outgoing
// transitions. The map must hold an entry (s, l) for every letter l of the
// alphabet. Targets must be known states or s itself.
func (d *DFA[S, L]) AddStateWithTransitions(s S, transitions map[Key[S, L]]S) error {
	known := func(x S) bool { return x == s || d.HasState(x) }
	if err := d.checkEntries(transitions, known); err != nil {
		return err
	}

	var missing []any
	for _, l := range d.letters {
		if _, ok := transitions[K(s, l)]; !ok {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return &domain.IncompleteTransitionError{State: s, Missing: missing}
	}

	d.AddState(s)
	d.install(transitions)
	return nil
}

// AddLetterWithTransitions extends the alphabet with letter. moves gives
// the successor of every existing state on the new letter.
func (d *DFA[S, L]) AddLetterWithTransitions(letter L, moves map[S]S) error {
	if d.HasLetter(letter) {
		return &domain.DuplicateLetterError{Letter: letter}
	}
	for _, from := range orderedStates(d.Skeleton, moves) {
		to := moves[from]
		if !d.HasState(from) {
			return &domain.UnknownStateError{State: from}
		}
		if !d.HasState(to) {
			return &domain.UnknownStateError{State: to}
		}
	}
	for _, s := range d.states {
		if _, ok := moves[s]; !ok {
			return &domain.IncompleteTransitionError{State: s, Missing: []any{letter}}
		}
	}

	d.addLetter(letter)
	for from, to := range moves {
		d.delta.set(from, letter, to)
	}
	d.logger.Debug("letter added", "letter", domain.FormatLetter(letter), "transitions", len(moves))
	return nil
}

// AddTransitions installs a batch of transitions. Either every entry is
// installed or none is.
func (d *DFA[S, L]) AddTransitions(transitions map[Key[S, L]]S) error {
	if err := d.checkEntries(transitions, d.HasState); err != nil {
		return err
	}
	d.install(transitions)
	return nil
}

// Validate checks that the transition function is total.
func (d *DFA[S, L]) Validate() error {
	for _, s := range d.states {
		var missing []any
		for _, l := range d.letters {
			if !d.delta.has(s, l) {
				missing = append(missing, l)
			}
		}
		if len(missing) > 0 {
			return &domain.IncompleteTransitionError{State: s, Missing: missing}
		}
	}
	return nil
}

// checkEntries validates a batch against the states accepted by known.
func (d *DFA[S, L]) checkEntries(transitions map[Key[S, L]]S, known func(S) bool) error {
	for _, k := range orderedKeys(d.Skeleton, transitions) {
		to := transitions[k]
		if !known(k.State) {
			return &domain.UnknownStateError{State: k.State}
		}
		if !d.HasLetter(k.Letter) {
			return &domain.UnknownLetterError{Letter: k.Letter}
		}
		if !known(to) {
			return &domain.UnknownStateError{State: to}
		}
		if d.delta.has(k.State, k.Letter) {
			return &domain.DuplicateTransitionError{State: k.State, Letter: k.Letter}
		}
	}
	return nil
}

func (d *DFA[S, L]) install(transitions map[Key[S, L]]S) {
	for k, to := range transitions {
		d.delta.set(k.State, k.Letter, to)
	}
	d.logger.Debug("transitions installed", "count", len(transitions), "total", d.delta.size())
}

// Traverse reads word from the initial state and returns the state reached.
// A missing transition yields UndefinedTransitionError.
func (d *DFA[S, L]) Traverse(word []L) (S, error) {
	_, final, err := d.walk(word, false)
	return final, err
}

// Trace is Traverse that also returns every move taken. Moves are logged
// at Debug level.
func (d *DFA[S, L]) Trace(word []L) ([]Step[S, L], S, error) {
	return d.walk(word, true)
}

// Accepts reports whether the state reached on word is accepting.
func (d *DFA[S, L]) Accepts(word []L) (bool, error) {
	start := time.Now()
	final, err := d.Traverse(word)
	accepted := err == nil && d.IsAccepting(final)
	d.emitQuery(domain.ModeDeterministic, word, accepted, len(word)+1, start, err)
	if err != nil {
		return false, err
	}
	return accepted, nil
}

func (d *DFA[S, L]) walk(word []L, record bool) ([]Step[S, L], S, error) {
	state := d.initial
	if err := d.ValidateWord(word); err != nil {
		return nil, state, err
	}

	var steps []Step[S, L]
	if record {
		steps = make([]Step[S, L], 0, len(word))
	}
	for i, l := range word {
		next, ok := d.delta.lookup(state, l)
		if !ok {
			d.emitStep(domain.ModeDeterministic, i, state, l, state, true)
			return steps, state, &domain.UndefinedTransitionError{State: state, Letter: l, Position: i}
		}
		d.emitStep(domain.ModeDeterministic, i, state, l, next, false)
		if record {
			steps = append(steps, Step[S, L]{Position: i, From: state, Letter: l, To: next})
			d.logger.Debug("automaton moved", "position", i, "from", state, "letter", domain.FormatLetter(l), "to", next)
		}
		state = next
	}
	return steps, state, nil
}
