package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of every page.
// The pdf library panics on some malformed files, so panics become extraction errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Kind: KindPDF, Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindPDF, Message: "failed to read PDF", Cause: err}
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{
				Kind:    KindPDF,
				Message: fmt.Sprintf("failed to read page %d", i),
				Cause:   err,
			}
		}
		textBuilder.WriteString(pageText)
		if i < numPages {
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
