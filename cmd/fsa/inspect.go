package main

import (
	"github.com/aretw0/fsa/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [config]...",
	Short: "Print the transition table",
	Long:  `Prints the initial states, accepting states and every transition as markdown, rendered when stdout is a terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Inspect(runOptions(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
