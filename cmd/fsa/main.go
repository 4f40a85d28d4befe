package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fsa/internal/cli"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
