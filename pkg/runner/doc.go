/*
Package runner classifies batches of words against an automaton.

It acts as the bridge between the automaton engine and its callers. The
runner deduplicates the batch, consults an optional verdict cache
(ports.VerdictCache), asks a Decider for the remaining words and returns a
Report with deterministic ordering.

# Key Components

  - Runner: the batch classifier.
  - Decider: how a single word is answered. Deterministic, Exhaustive and
    Parallel adapt the automaton queries.
  - Report: accepted and rejected words, renderable as text or markdown.

# Usage

	r := runner.NewRunner(
		runner.Exhaustive(nfa),
		runner.WithNamespace("demo"),
		runner.WithCache(memory.NewCache()),
	)

	report, err := r.Classify(ctx, batch)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(report.Text())
*/
package runner
