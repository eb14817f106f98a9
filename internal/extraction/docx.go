package extraction

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	tabElement   = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX reads the WordprocessingML body and converts it to plain text,
// one line per paragraph.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindDOCX, Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return wordXMLToText(doc.Editable().GetContent()), nil
}

// wordXMLToText strips WordprocessingML markup, keeping paragraph and tab boundaries.
func wordXMLToText(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = tabElement.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return strings.TrimRight(content, "\n")
}
