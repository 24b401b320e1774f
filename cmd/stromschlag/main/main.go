package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stromschlag/cmd/stromschlag"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := stromschlag.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.FgRed.Sprint(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
