package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "automata decides membership of words in finite-automaton languages",
	Long: `automata builds one of the shipped sample automata and classifies words against it,
either a batch of random words (classify) or a single word (check).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringP("automaton", "a", "", "Sample automaton (see 'automata list')")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON lines")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks one)")
	rootCmd.PersistentFlags().Bool("parallel", false, "Search NFA branches concurrently")
	rootCmd.PersistentFlags().String("cache", "", "Verdict cache: none, memory, redis")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for the redis cache")
}

// loadConfig reads the --config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("automaton") {
		cfg.Automaton, _ = flags.GetString("automaton")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("parallel") {
		cfg.Parallel, _ = flags.GetBool("parallel")
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend, _ = flags.GetString("cache")
	}
	if flags.Changed("redis-addr") {
		cfg.Cache.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Lookup("words") != nil && flags.Changed("words") {
		cfg.Words, _ = flags.GetInt("words")
	}
	if flags.Lookup("min-length") != nil && flags.Changed("min-length") {
		cfg.MinLength, _ = flags.GetInt("min-length")
	}
	if flags.Lookup("max-length") != nil && flags.Changed("max-length") {
		cfg.MaxLength, _ = flags.GetInt("max-length")
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	return cfg, cfg.Validate()
}
