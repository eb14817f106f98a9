package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/resume"
	"github.com/jonathan/resume-optimizer/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into a structured record",
	Long:  "Extracts text from a PDF, DOCX, HTML or text resume and prints the parsed record as JSON.",
	RunE:  runParseResume,
}

var (
	parseResumeInput    string
	parseResumeOutput   string
	parseResumeValidate bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseResumeCmd.Flags().BoolVar(&parseResumeValidate, "validate", false, "Validate the record against the resume record schema")

	if err := parseResumeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	record, err := loadResume(parseResumeInput)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if parseResumeValidate {
		if err := schemas.ValidateRecord(data); err != nil {
			return fmt.Errorf("record failed schema validation: %w", err)
		}
	}

	return writeOutput(cmd.OutOrStdout(), parseResumeOutput, append(data, '\n'))
}

// loadResume extracts text from the file at path, choosing the extractor by extension,
// and parses it.
func loadResume(path string) (*resume.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	kind, err := extraction.DetectKind("", path)
	if err != nil {
		return nil, err
	}

	text, err := extraction.Extract(kind, data)
	if err != nil {
		return nil, err
	}
	return resume.ParseText(text), nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}
