// Package config loads the classifier settings from a YAML file.
//
// The file is decoded into a generic map first and then into Config with
// mapstructure, so absent keys keep their defaults and durations may be
// written as "30s".
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/automata/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Output modes.
const (
	OutputAuto     = "auto"
	OutputPlain    = "plain"
	OutputMarkdown = "markdown"
)

// Config drives the classify and check commands.
type Config struct {
	Automaton string      `mapstructure:"automaton"`
	Words     int         `mapstructure:"words"`
	MinLength int         `mapstructure:"min_length"`
	MaxLength int         `mapstructure:"max_length"`
	Seed      uint64      `mapstructure:"seed"` // 0 picks a random seed
	Parallel  bool        `mapstructure:"parallel"`
	LogLevel  string      `mapstructure:"log_level"`
	LogJSON   bool        `mapstructure:"log_json"`
	Output    string      `mapstructure:"output"`
	Cache     CacheConfig `mapstructure:"cache"`
}

// CacheConfig selects where verdicts are memoized between runs.
type CacheConfig struct {
	Backend  string        `mapstructure:"backend"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the settings of the demo run: 100 distinct words of
// length 0 to 12 over the demo automaton, no cache.
func Default() Config {
	return Config{
		Automaton: "demo",
		Words:     100,
		MinLength: 0,
		MaxLength: 12,
		LogLevel:  "info",
		Output:    OutputAuto,
		Cache: CacheConfig{
			Backend: CacheNone,
			Addr:    "localhost:6379",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode merges YAML data into cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Words < 0 {
		errs = append(errs, fmt.Errorf("words must not be negative, got %d", c.Words))
	}
	if c.MinLength < 0 || c.MaxLength < c.MinLength {
		errs = append(errs, fmt.Errorf("invalid length range [%d, %d]", c.MinLength, c.MaxLength))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.Output {
	case OutputAuto, OutputPlain, OutputMarkdown:
	default:
		errs = append(errs, fmt.Errorf("unknown output mode %q", c.Output))
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.Addr == "" {
			errs = append(errs, errors.New("redis cache requires an address"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache ttl must not be negative, got %s", c.Cache.TTL))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
