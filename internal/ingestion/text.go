// Package ingestion normalizes free-form job description text supplied with an upload.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerWhitespace = regexp.MustCompile(`[ \t\f\v]+`)
	blankRun        = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, collapses runs of spaces inside each line,
// keeps at most one blank line between paragraphs and trims the result.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace. Bullet markers are normalized to "- ".
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	for _, marker := range []string{"• ", "· ", "* "} {
		if strings.HasPrefix(trimmed, marker) {
			trimmed = "- " + strings.TrimPrefix(trimmed, marker)
			break
		}
	}

	return innerWhitespace.ReplaceAllString(trimmed, " ")
}

// Headline returns the first non-empty line of a cleaned job description,
// which is usually the role title.
func Headline(content string) string {
	cleaned := CleanText(content)
	if cleaned == "" {
		return ""
	}
	line, _, _ := strings.Cut(cleaned, "\n")
	return line
}

// ReadFile reads and cleans a job description from disk.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
