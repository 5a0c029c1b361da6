package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/samples"
)

// GraphOptions contains all the configuration for the graph command.
type GraphOptions struct {
	Automaton string
	Word      string // Highlight the run on this word when set
	Seed      uint64
	Out       io.Writer
}

// RunGraph prints the sample automaton as a Mermaid flowchart.
func RunGraph(opts GraphOptions) error {
	sample, err := samples.Lookup(opts.Automaton)
	if err != nil {
		return err
	}
	machine, err := sample.Build()
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", sample.Name, err)
	}

	var overlay *graph.Overlay[int, rune]
	if opts.Word != "" {
		rng, _ := newRand(opts.Seed)
		run, err := machine.Trace([]rune(opts.Word), rng)
		if err != nil {
			return err
		}
		overlay = &graph.Overlay[int, rune]{Steps: run.Steps, Final: run.Final, Stuck: run.Stuck}
	}

	_, err = io.WriteString(opts.Out, graph.GenerateMermaid[int, rune](machine, overlay))
	return err
}

// ListSamples prints the shipped automata.
func ListSamples(w io.Writer) {
	for _, s := range samples.All() {
		fmt.Fprintf(w, "%-12s %s\n", s.Name, s.Description)
	}
}
