package main

import (
	"context"

	"github.com/aretw0/fsa/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [config]...",
	Short: "Start the HTTP decision server",
	Long: `Serves the loaded automata over HTTP:
  POST /decide     {"input": "..."} or {"inputs": ["...", ...]}
  GET  /automaton  transitions, initial and accepting states
  GET  /graph      Mermaid flowchart
  GET  /healthz    liveness
  GET  /metrics    Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		if cmd.Flags().Changed("addr") {
			addr, _ := cmd.Flags().GetString("addr")
			opts.Addr = &addr
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Serve(ctx, opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
