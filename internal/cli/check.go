package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/internal/samples"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/runner"
)

// CheckOptions contains all the configuration for the check command.
type CheckOptions struct {
	Config config.Config
	Word   string
	Trace  bool
	Out    io.Writer
}

// RunCheck prints the verdict of the sample automaton on one word, and
// optionally the run that led to it.
func RunCheck(ctx context.Context, opts CheckOptions) error {
	cfg := opts.Config
	logger := createLogger(cfg)

	sample, err := samples.Lookup(cfg.Automaton)
	if err != nil {
		return err
	}
	machine, err := sample.Build(automaton.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", sample.Name, err)
	}

	cache, closeCache, err := openCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeCache() }()

	runnerOpts := []runner.Option{runner.WithNamespace(sample.Name), runner.WithLogger(logger)}
	if cache != nil {
		runnerOpts = append(runnerOpts, runner.WithCache(cache))
	}
	accepted, err := runner.NewRunner(machine.Decider(cfg.Parallel), runnerOpts...).Decide(ctx, opts.Word)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.Out, "%s: %s\n", runner.DisplayWord(opts.Word), tui.Verdict(accepted))

	if !opts.Trace {
		return nil
	}

	rng, seed := newRand(cfg.Seed)
	run, err := machine.Trace([]rune(opts.Word), rng)
	if err != nil {
		return err
	}
	if !machine.Deterministic() {
		printSystemMessage(opts.Out, "Sampled run (seed %d); other runs may differ.", seed)
	}
	printRun(opts.Out, run, []rune(opts.Word))
	return nil
}

func printRun(w io.Writer, run automaton.Run[int, rune], word []rune) {
	for _, step := range run.Steps {
		fmt.Fprintf(w, "state before reading: %d; reading letter: %c; moved to state %d\n", step.From, step.Letter, step.To)
	}
	if run.Stuck {
		next := word[len(run.Steps)]
		fmt.Fprintf(w, "stuck in state %d: no transition on %s\n", run.Final, domain.FormatLetter(next))
		return
	}
	fmt.Fprintf(w, "finished reading %s, final state: %d (accepting: %t)\n",
		runner.DisplayWord(string(word)), run.Final, run.Accepted)
}
