package extraction

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches elements that never carry resume text.
const noiseSelector = "script, style, noscript, template, head, nav, .cookie-banner"

// blockSelector matches elements that end a line when rendered.
const blockSelector = "p, div, li, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer, address, dt, dd"

// extractHTML returns the visible text of an HTML resume, one line per block element.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Kind: KindHTML, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find(noiseSelector).Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	content := doc.Find("body")
	if content.Length() == 0 {
		content = doc.Selection
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims every line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
