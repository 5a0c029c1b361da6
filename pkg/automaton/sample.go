package automaton

import (
	"math/rand/v2"
	"time"

	"github.com/aretw0/automata/pkg/domain"
)

// Run is the record of one random walk through an NFA.
type Run[S, L comparable] struct {
	Steps    []Step[S, L]
	Final    S    // Last state reached; where the run stopped if Stuck
	Stuck    bool // No transition for the next letter
	Accepted bool
}

// AcceptsSampled performs a single random run, choosing uniformly among the
// successors at every move.
//
// The answer is unsound for rejection: true proves the word is accepted,
// false only means this run did not accept it. Use AcceptsExhaustive to
// decide membership. A nil rng uses the package-level source.
func (n *NFA[S, L]) AcceptsSampled(word []L, rng *rand.Rand) (bool, error) {
	start := time.Now()
	run, err := n.sample(word, rng, false)
	n.emitQuery(domain.ModeSampled, word, run.Accepted, len(run.Steps)+1, start, err)
	if err != nil {
		return false, err
	}
	return run.Accepted, nil
}

// TraceSampled is AcceptsSampled that returns the run. Moves are logged at
// Debug level. The same soundness caveat applies.
func (n *NFA[S, L]) TraceSampled(word []L, rng *rand.Rand) (Run[S, L], error) {
	return n.sample(word, rng, true)
}

func (n *NFA[S, L]) sample(word []L, rng *rand.Rand, verbose bool) (Run[S, L], error) {
	run := Run[S, L]{Final: n.initial}
	if err := n.ValidateWord(word); err != nil {
		return run, err
	}

	pick := rand.IntN
	if rng != nil {
		pick = rng.IntN
	}

	state := n.initial
	run.Steps = make([]Step[S, L], 0, len(word))
	for i, l := range word {
		next, ok := n.delta.lookup(state, l)
		if !ok {
			n.emitStep(domain.ModeSampled, i, state, l, state, true)
			if verbose {
				n.logger.Debug("automaton stuck", "position", i, "state", state, "letter", domain.FormatLetter(l))
			}
			run.Final = state
			run.Stuck = true
			return run, nil
		}
		to := next[pick(len(next))]
		n.emitStep(domain.ModeSampled, i, state, l, to, false)
		if verbose {
			n.logger.Debug("automaton moved", "position", i, "from", state, "letter", domain.FormatLetter(l), "to", to)
		}
		run.Steps = append(run.Steps, Step[S, L]{Position: i, From: state, Letter: l, To: to})
		state = to
	}

	run.Final = state
	run.Accepted = n.IsAccepting(state)
	return run, nil
}
