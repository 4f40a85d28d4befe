package main

import (
	"github.com/aretw0/fsa/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [config]...",
	Short: "Export the automaton visualization",
	Long:  `Outputs a Mermaid diagram (graph LR) of the loaded automata. Initial states are circles, accepting states double circles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		highlight, _ := cmd.Flags().GetStringSlice("highlight")
		return cli.Graph(runOptions(cmd, args), highlight)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("highlight", nil, "States to highlight")
}
