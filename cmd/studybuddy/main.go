// Package main provides the entry point for the StudyBuddy HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: "StudyBuddy exam analysis and study companion",
	Long:  "StudyBuddy analyzes uploaded IHK exam papers with Gemini, classifies the extracted questions into the Industriemeister taxonomy, and tracks practice progress via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
