package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/metrics"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/internal/samples"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/oracle"
	"github.com/aretw0/automata/pkg/runner"
	"github.com/aretw0/automata/pkg/words"
)

// ErrOracleMismatch is returned when the automaton disagrees with its oracle.
var ErrOracleMismatch = errors.New("automaton disagrees with its oracle")

// ClassifyOptions contains all the configuration for the classify command.
type ClassifyOptions struct {
	Config  config.Config
	Oracle  bool // Cross-check every verdict against the sample's predicate
	Metrics bool // Append the Prometheus text exposition
	Banner  bool
	Out     io.Writer
}

// RunClassify generates a batch of distinct random words, classifies it
// with the configured sample automaton and prints both sets.
func RunClassify(ctx context.Context, opts ClassifyOptions) error {
	cfg := opts.Config
	logger := createLogger(cfg)

	sample, err := samples.Lookup(cfg.Automaton)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	machine, err := sample.Build(
		automaton.WithLogger(logger),
		automaton.WithHooks(collector.Hooks()),
	)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", sample.Name, err)
	}

	rng, seed := newRand(cfg.Seed)
	batch, err := words.Batch(machine.Alphabet(), cfg.Words, cfg.MinLength, cfg.MaxLength, rng)
	if err != nil {
		return err
	}
	logger.Info("batch generated", "automaton", sample.Name, "words", len(batch), "seed", seed)

	cache, closeCache, err := openCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("failed to close verdict cache", "error", err)
		}
	}()

	runnerOpts := []runner.Option{
		runner.WithNamespace(sample.Name),
		runner.WithLogger(logger),
		runner.WithHooks(collector.Hooks()),
	}
	if cache != nil {
		runnerOpts = append(runnerOpts, runner.WithCache(cache))
	}
	r := runner.NewRunner(machine.Decider(cfg.Parallel), runnerOpts...)

	report, err := r.Classify(ctx, batch)
	if err != nil {
		return err
	}

	if err := printReport(opts, report); err != nil {
		return err
	}

	if opts.Oracle {
		if err := crossCheck(ctx, opts.Out, machine, sample, batch); err != nil {
			return err
		}
	}

	if opts.Metrics {
		fmt.Fprintln(opts.Out)
		return collector.WriteText(opts.Out)
	}
	return nil
}

func printReport(opts ClassifyOptions, report *runner.Report) error {
	if !useMarkdown(opts.Config.Output, opts.Out) {
		_, err := io.WriteString(opts.Out, report.Text())
		return err
	}

	if opts.Banner {
		tui.PrintBanner(opts.Out)
	}
	rendered, err := tui.NewRenderer()(report.Markdown())
	if err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	_, err = io.WriteString(opts.Out, rendered)
	return err
}

func crossCheck(ctx context.Context, out io.Writer, machine samples.Machine, sample samples.Sample, batch []string) error {
	decider := machine.Decider(false)
	decide := func(w string) (bool, error) {
		return decider.Decide(ctx, []rune(w))
	}

	mismatches, err := oracle.CrossCheck(decide, sample.Oracle, batch)
	if err != nil {
		return err
	}
	if len(mismatches) == 0 {
		printSystemMessage(out, "Oracle agrees on all %d words.", len(batch))
		return nil
	}
	for _, m := range mismatches {
		printSystemMessage(out, "Mismatch %s", m)
	}
	return fmt.Errorf("%w on %d of %d words", ErrOracleMismatch, len(mismatches), len(batch))
}
