package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "sel",
		Short: "A linear equation simplifier",
	}

	rootCmd.AddCommand(newSimplifyCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newASTCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
