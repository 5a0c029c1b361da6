package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/ports"
)

// createLogger configures the application logger.
// It writes to Stderr (to separate from the verdicts on Stdout).
func createLogger(cfg config.Config) *slog.Logger {
	return logging.NewTo(os.Stderr, cfg.Level(), cfg.LogJSON)
}

// openCache builds the configured verdict cache. A nil cache means none.
// The returned close function is never nil.
func openCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.VerdictCache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.CacheNone, "":
		return nil, noop, nil
	case config.CacheMemory:
		return memory.NewCache(), noop, nil
	case config.CacheRedis:
		cache := redis.New(cfg.Addr, cfg.Password, cfg.DB, redis.WithTTL(cfg.TTL))
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, noop, fmt.Errorf("redis cache at %s unavailable: %w", cfg.Addr, err)
		}
		logger.Debug("verdict cache connected", "backend", cfg.Backend, "addr", cfg.Addr, "db", cfg.DB)
		return cache, cache.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

// newRand seeds a PCG source. Seed 0 draws a random seed, which is
// returned so the batch can be reproduced.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed)), seed
}

// useMarkdown decides whether output goes through the markdown renderer.
func useMarkdown(mode string, out io.Writer) bool {
	switch mode {
	case config.OutputMarkdown:
		return true
	case config.OutputPlain:
		return false
	}
	f, ok := out.(*os.File)
	return ok && tui.IsTerminal(f)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// IsInterrupted reports whether err comes from cancellation.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
