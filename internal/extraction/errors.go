package extraction

import "fmt"

// ExtractionError is the single failure classification for turning an uploaded
// document into text. Extraction is not retried.
type ExtractionError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError indicates an upload whose type cannot be extracted
type UnsupportedTypeError struct {
	ContentType string
	Filename    string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: content type %q, file %q", e.ContentType, e.Filename)
}
