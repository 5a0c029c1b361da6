package main

import (
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) of the sample automaton, optionally highlighting the run on --word.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		word, _ := cmd.Flags().GetString("word")

		return cli.RunGraph(cli.GraphOptions{
			Automaton: cfg.Automaton,
			Word:      word,
			Seed:      cfg.Seed,
			Out:       os.Stdout,
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sample automata",
	Run: func(cmd *cobra.Command, args []string) {
		cli.ListSamples(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd, listCmd)
	graphCmd.Flags().StringP("word", "w", "", "Highlight the run on this word")
}
