package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/generation"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/resume"
)

// Output formats accepted by generate --format.
const (
	formatText        = "text"
	formatLaTeX       = "latex"
	formatCoverLetter = "cover-letter"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an optimized resume or cover letter",
	Long:  "Parses a resume file and prints the optimized text resume, LaTeX resume or cover letter, optionally targeted at a job description.",
	RunE:  runGenerate,
}

var (
	generateInput   string
	generateJobFile string
	generateFormat  string
	generateOutput  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "in", "i", "", "Path to resume file (required)")
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to job description text file")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", formatText, "Output format: text, latex or cover-letter")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output file (defaults to stdout)")

	if err := generateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	record, err := loadResume(generateInput)
	if err != nil {
		return err
	}

	var jobDescription string
	if generateJobFile != "" {
		jobDescription, err = ingestion.ReadFile(generateJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}

	content, err := generateDocument(generateFormat, record, jobDescription, time.Now())
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), generateOutput, []byte(content))
}

func generateDocument(format string, record *resume.Record, jobDescription string, now time.Time) (string, error) {
	switch format {
	case formatText:
		return generation.Resume(record, jobDescription, now), nil
	case formatCoverLetter:
		return generation.CoverLetter(record, jobDescription, now), nil
	case formatLaTeX:
		return generation.ResumeLaTeX(record, jobDescription, now)
	default:
		return "", fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatText, formatLaTeX, formatCoverLetter)
	}
}
