package main

import (
	"context"

	"github.com/aretw0/fsa/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [config]...",
	Short: "Decide whether stdin is accepted",
	Long: `Loads every configuration (an input is accepted if any of them accepts it),
reads all of stdin as the input string and prints "Accepted" or "Not accepted".
A single trailing newline is stripped unless --raw is set.

Exit codes: 0 on either verdict, 1 when no configuration is given or a
configuration file does not exist, 2 when a configuration or stdin cannot be read,
3 on any other failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Execute(ctx, runOptions(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default when no command is given.
	rootCmd.RunE = runCmd.RunE
}
