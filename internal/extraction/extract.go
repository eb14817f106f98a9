// Package extraction turns uploaded resume documents (PDF, DOCX, HTML, plain text) into raw text.
package extraction

import (
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Kind is a supported document format.
type Kind string

// Supported document kinds.
const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindHTML Kind = "html"
	KindText Kind = "text"
)

// PreviewLength is the number of characters kept by Preview.
const PreviewLength = 500

var contentTypeKinds = map[string]Kind{
	"application/pdf": KindPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": KindDOCX,
	"application/msword": KindDOCX,
	"text/html":          KindHTML,
	"text/plain":         KindText,
	"text/markdown":      KindText,
	"application/json":   KindText,
}

var extensionKinds = map[string]Kind{
	".pdf":  KindPDF,
	".docx": KindDOCX,
	".doc":  KindDOCX,
	".html": KindHTML,
	".htm":  KindHTML,
	".txt":  KindText,
	".md":   KindText,
	".json": KindText,
}

// allowedExtensions are the upload extensions accepted by AllowedFile.
var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
	"txt":  true,
	"md":   true,
	"html": true,
	"htm":  true,
}

// AllowedFile reports whether filename has an extension accepted for upload.
func AllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// DetectKind picks the document kind from the declared content type, falling back
// to the file extension when the content type is missing or generic.
func DetectKind(contentType, filename string) (Kind, error) {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			if kind, ok := contentTypeKinds[strings.ToLower(mediaType)]; ok {
				return kind, nil
			}
		}
	}

	if kind, ok := extensionKinds[strings.ToLower(filepath.Ext(filename))]; ok {
		return kind, nil
	}

	return "", &UnsupportedTypeError{ContentType: contentType, Filename: filename}
}

// Extract returns the raw text of a document of the given kind.
// All failures are reported as *ExtractionError.
func Extract(kind Kind, data []byte) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindDOCX:
		return extractDOCX(data)
	case KindHTML:
		return extractHTML(data)
	case KindText:
		if !utf8.Valid(data) {
			return "", &ExtractionError{Kind: kind, Message: "text is not valid UTF-8"}
		}
		return string(data), nil
	default:
		return "", &ExtractionError{Kind: kind, Message: "unknown document kind"}
	}
}

// Preview returns the first PreviewLength characters of text followed by "..."
// when text is longer.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}

	count := 0
	for i := range text {
		if count == PreviewLength {
			return text[:i] + "..."
		}
		count++
	}
	return text
}
