package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// DefaultNamespace is used when no namespace is configured.
const DefaultNamespace = "default"

// Runner classifies batches of words against one automaton.
type Runner struct {
	Decider Decider

	// Cache memoizes verdicts across runs. If nil, every word is decided.
	Cache ports.VerdictCache

	// Namespace partitions the cache.
	Namespace string

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Hooks domain.Hooks
}

// NewRunner creates a Runner around decider.
func NewRunner(decider Decider, opts ...Option) *Runner {
	r := &Runner{
		Decider:   decider,
		Namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Classify decides every word and partitions the batch. Duplicate words
// are decided once. The first decision error aborts the batch, as does
// cancellation of ctx.
func (r *Runner) Classify(ctx context.Context, words []string) (*Report, error) {
	start := time.Now()
	report := &Report{Automaton: r.Namespace}
	seen := make(map[string]struct{}, len(words))

	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}

		accepted, hit, err := r.decide(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("classify %q: %w", w, err)
		}
		if hit {
			report.CacheHits++
		}
		if accepted {
			report.Accepted = append(report.Accepted, w)
		} else {
			report.Rejected = append(report.Rejected, w)
		}
	}

	report.sort()
	report.Duration = time.Since(start)
	r.Logger.Info("batch classified",
		"automaton", r.Namespace,
		"words", len(seen),
		"accepted", len(report.Accepted),
		"rejected", len(report.Rejected),
		"cache_hits", report.CacheHits,
		"duration", report.Duration,
	)
	return report, nil
}

// Decide answers a single word, consulting the cache first.
func (r *Runner) Decide(ctx context.Context, word string) (bool, error) {
	accepted, _, err := r.decide(ctx, word)
	return accepted, err
}

func (r *Runner) decide(ctx context.Context, word string) (accepted, hit bool, err error) {
	if r.Cache != nil {
		accepted, found, err := r.Cache.Get(ctx, r.Namespace, word)
		switch {
		case err != nil:
			r.Logger.Warn("verdict cache lookup failed", "word", word, "error", err)
		default:
			r.emitCache(found)
			if found {
				r.Logger.Debug("verdict cache hit", "word", word, "accepted", accepted)
				return accepted, true, nil
			}
		}
	}

	accepted, err = r.Decider.Decide(ctx, []rune(word))
	if err != nil {
		return false, false, err
	}

	if r.Cache != nil {
		if err := r.Cache.Put(ctx, r.Namespace, word, accepted); err != nil {
			r.Logger.Warn("verdict cache store failed", "word", word, "error", err)
		}
	}
	return accepted, false, nil
}

func (r *Runner) emitCache(hit bool) {
	if r.Hooks.OnCache != nil {
		r.Hooks.OnCache(&domain.CacheEvent{Namespace: r.Namespace, Hit: hit})
	}
}
