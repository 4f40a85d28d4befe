package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsa"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fsa version %s\n", strings.TrimSpace(fsa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
