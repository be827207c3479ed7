// Package main provides the entry point for the applicant screening CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screening_agent",
	Short: "Applicant scoring and duplicate detection CLI",
	Long:  "Screening agent scores job applications with weighted heuristic criteria, detects duplicate submissions with fuzzy matching, and ranks applications for review.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
