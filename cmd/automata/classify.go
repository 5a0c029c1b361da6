package main

import (
	"context"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a batch of random words",
	Long: `Generates distinct random words over the automaton's alphabet and prints the words
it accepts and the words it rejects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		oracleCheck, _ := cmd.Flags().GetBool("oracle")
		metricsDump, _ := cmd.Flags().GetBool("metrics")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err = cli.RunClassify(ctx, cli.ClassifyOptions{
			Config:  cfg,
			Oracle:  oracleCheck,
			Metrics: metricsDump,
			Banner:  !noBanner,
			Out:     os.Stdout,
		})
		if cli.IsInterrupted(err) && ctx.Signal() != nil {
			return context.Cause(ctx)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().IntP("words", "n", 100, "Number of distinct words")
	classifyCmd.Flags().Int("min-length", 0, "Minimum word length")
	classifyCmd.Flags().Int("max-length", 12, "Maximum word length")
	classifyCmd.Flags().StringP("output", "o", "auto", "Output: auto, plain, markdown")
	classifyCmd.Flags().Bool("oracle", false, "Cross-check verdicts against the sample's predicate")
	classifyCmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the report")
	classifyCmd.Flags().Bool("no-banner", false, "Do not print the banner in markdown mode")
}
