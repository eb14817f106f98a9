// Package main provides the entry point for the Resume Optimizer HTTP API server and tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume Optimizer HTTP API Server",
	Long: "Resume Optimizer extracts text from uploaded resumes, parses it into a structured record " +
		"and generates an optimized resume, cover letter and LaTeX resume for download.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger.Init(logger.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: envOr("LOG_FORMAT", "pretty"),
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
