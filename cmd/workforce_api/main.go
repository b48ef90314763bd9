// Package main provides the entry point for the Workforce Distribution AI API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "workforce_api",
	Short: "Workforce Distribution AI API Server",
	Long:  "Workforce Distribution AI serves employee records, job-match scoring, salary estimation, and ML-backed workforce predictions via REST API.",
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
