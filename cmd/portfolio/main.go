// Package main provides the entry point for the portfolio dashboard server and its tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio dashboard server",
	Long:  "Portfolio serves a single-page dashboard of experience, projects, publications and certifications, and renders the same content as HTML cards.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
