package samples

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/oracle"
	"github.com/aretw0/automata/pkg/runner"
)

// ErrUnknownSample is returned by Lookup and Build for unregistered names.
var ErrUnknownSample = errors.New("unknown sample automaton")

// Machine is a built sample, whichever kind of automaton it is.
type Machine interface {
	Name() string
	Alphabet() []rune
	Initial() int
	States() []int
	IsAccepting(s int) bool
	Edges() []automaton.Edge[int, rune]

	// Deterministic reports whether the machine is a DFA.
	Deterministic() bool
	// Decider answers membership. parallel only affects NFAs.
	Decider(parallel bool) runner.Decider
	// Trace follows one run. For an NFA this is a sampled run and may
	// reject a word the automaton accepts.
	Trace(word []rune, rng *rand.Rand) (automaton.Run[int, rune], error)
}

// Sample describes a shipped automaton.
type Sample struct {
	Name        string
	Description string
	Oracle      oracle.Predicate
	build       func(opts ...automaton.Option) (Machine, error)
}

// Build constructs the automaton, named after the sample.
func (s Sample) Build(opts ...automaton.Option) (Machine, error) {
	opts = append([]automaton.Option{automaton.WithName(s.Name)}, opts...)
	return s.build(opts...)
}

var registry = []Sample{
	{
		Name:        "demo",
		Description: `NFA: non-empty words over {a, b} with no "bb" that do not end in "ba"`,
		Oracle:      oracle.NoBBNoTrailingBA,
		build: func(opts ...automaton.Option) (Machine, error) {
			n, err := DemoNFA(opts...)
			if err != nil {
				return nil, err
			}
			return nfaMachine{n}, nil
		},
	},
	{
		Name:        "odd-a",
		Description: "DFA: words over {a, b} with an odd number of a's",
		Oracle:      oracle.OddCountOfA,
		build: func(opts ...automaton.Option) (Machine, error) {
			d, err := OddA(opts...)
			if err != nil {
				return nil, err
			}
			return dfaMachine{d}, nil
		},
	},
	{
		Name:        "odd-a-odd-b",
		Description: "DFA: an odd run of a's followed by an odd run of b's",
		Oracle:      oracle.OddAThenOddB,
		build: func(opts ...automaton.Option) (Machine, error) {
			d, err := OddAThenOddB(opts...)
			if err != nil {
				return nil, err
			}
			return dfaMachine{d}, nil
		},
	},
}

// All returns every sample in display order.
func All() []Sample {
	return slices.Clone(registry)
}

// Names lists the registered sample names.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a sample by name.
func Lookup(name string) (Sample, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Sample{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownSample, name, Names())
}

type dfaMachine struct {
	*automaton.DFA[int, rune]
}

func (dfaMachine) Deterministic() bool { return true }

func (m dfaMachine) Decider(bool) runner.Decider {
	return runner.Deterministic(m.DFA)
}

func (m dfaMachine) Trace(word []rune, _ *rand.Rand) (automaton.Run[int, rune], error) {
	steps, final, err := m.DFA.Trace(word)
	if err != nil {
		return automaton.Run[int, rune]{}, err
	}
	return automaton.Run[int, rune]{Steps: steps, Final: final, Accepted: m.IsAccepting(final)}, nil
}

type nfaMachine struct {
	*automaton.NFA[int, rune]
}

func (nfaMachine) Deterministic() bool { return false }

func (m nfaMachine) Decider(parallel bool) runner.Decider {
	if parallel {
		return runner.Parallel(m.NFA)
	}
	return runner.Exhaustive(m.NFA)
}

func (m nfaMachine) Trace(word []rune, rng *rand.Rand) (automaton.Run[int, rune], error) {
	return m.TraceSampled(word, rng)
}

var (
	_ Machine = dfaMachine{}
	_ Machine = nfaMachine{}
)
