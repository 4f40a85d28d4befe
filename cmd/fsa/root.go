package main

import (
	"github.com/aretw0/fsa/internal/cli"
	"github.com/aretw0/fsa/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsa [config]...",
	Short: "fsa decides whether finite automata accept an input string",
	Long: `fsa loads one or more automaton configurations, reads an input string from
stdin and prints "Accepted" or "Not accepted".

Each configuration line is "<from> <symbol> <to> [*]"; symbols may be any
whitespace-free string and "*" marks the output state as accepting.
YAML and JSON documents are accepted too.`,
	// Positional arguments are configuration files for the default run command.
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "Settings file (YAML or JSON)")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.Bool("no-color", false, "Disable coloured output")
	flags.Bool("memo", false, "Enable the memoized search")
	flags.Int("max-input", 0, "Reject inputs longer than this many bytes (0 disables)")
	flags.String("redis", "", "Redis URL of the decision cache (e.g. redis://localhost:6379/0)")
	flags.Bool("raw", false, "Keep the trailing newline of stdin as part of the input")
}

// runOptions collects the shared flags. Settings flags only override the
// settings file when given explicitly.
func runOptions(cmd *cobra.Command, args []string) cli.RunOptions {
	flags := cmd.Flags()

	opts := cli.RunOptions{
		Sources:        args,
		ConfigRequired: flags.Changed("config"),
		Stdin:          cmd.InOrStdin(),
		Stdout:         cmd.OutOrStdout(),
		Stderr:         cmd.ErrOrStderr(),
	}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Debug, _ = flags.GetBool("debug")
	opts.NoColor, _ = flags.GetBool("no-color")
	opts.Raw, _ = flags.GetBool("raw")

	if flags.Changed("memo") {
		v, _ := flags.GetBool("memo")
		opts.Memoize = &v
	}
	if flags.Changed("max-input") {
		v, _ := flags.GetInt("max-input")
		opts.MaxInputLength = &v
	}
	if flags.Changed("redis") {
		v, _ := flags.GetString("redis")
		opts.RedisURL = &v
	}
	return opts
}
