package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/rendering"
)

var escapeLaTeXCmd = &cobra.Command{
	Use:   "escape-latex",
	Short: "Escape every string in a JSON document for LaTeX",
	Long:  "Reads a JSON document and writes it back with every string value LaTeX-escaped. Keys, order and non-string values are unchanged.",
	RunE:  runEscapeLaTeX,
}

var (
	escapeLaTeXInput  string
	escapeLaTeXOutput string
)

func init() {
	escapeLaTeXCmd.Flags().StringVarP(&escapeLaTeXInput, "in", "i", "", "Path to input JSON file (required)")
	escapeLaTeXCmd.Flags().StringVarP(&escapeLaTeXOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	if err := escapeLaTeXCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(escapeLaTeXCmd)
}

func runEscapeLaTeX(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(escapeLaTeXInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	out, err := escapeJSON(data)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), escapeLaTeXOutput, append(out, '\n'))
}

func escapeJSON(data []byte) ([]byte, error) {
	value, err := rendering.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return rendering.Escape(value).MarshalJSON()
}
