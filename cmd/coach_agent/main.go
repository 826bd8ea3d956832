// Package main provides the entry point for the interview coach CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach_agent",
	Short: "Interview answer scoring and core story synthesis",
	Long:  "Interview coach scores practice answers against a multi-dimensional rubric under interviewer personas and synthesizes reusable STAR core stories from an answer bank.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
