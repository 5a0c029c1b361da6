package main

import (
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [word]",
	Short: "Decide a single word",
	Long: `Prints whether the automaton accepts the word. With --trace, also prints the run:
the only run for a DFA, one sampled run for an NFA. Omit the word to check the empty word.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		trace, _ := cmd.Flags().GetBool("trace")

		var word string
		if len(args) > 0 {
			word = args[0]
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunCheck(ctx, cli.CheckOptions{
			Config: cfg,
			Word:   word,
			Trace:  trace,
			Out:    os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("trace", "t", false, "Print the run step by step")
}
