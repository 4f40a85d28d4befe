package main

import (
	"github.com/aretw0/fsa/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]...",
	Short: "Check the automaton for consistency",
	Long: `Crawls the automaton from its initial states and reports unreachable states
and dead ends. Fails when no accepting state can be reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(runOptions(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
