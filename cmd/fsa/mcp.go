package main

import (
	"context"

	"github.com/aretw0/fsa/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [config]...",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the loaded automata to AI agents as MCP tools (decide, get_automaton,
get_graph) and resources (fsa://automaton, fsa://graph).

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP on --addr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args)
		transport, _ := cmd.Flags().GetString("transport")
		if cmd.Flags().Changed("addr") {
			addr, _ := cmd.Flags().GetString("addr")
			opts.Addr = &addr
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.ServeMCP(ctx, opts, transport)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().String("addr", ":8080", "Address to listen on (only for SSE)")
}
