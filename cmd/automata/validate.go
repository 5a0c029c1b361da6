package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [automaton...]",
	Short: "Check the sample automata for consistency",
	Long:  `Crawls each automaton from its initial state and reports unreachable states, dead states and missing transitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.RunValidate(os.Stdout, args); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Println("All automata are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
