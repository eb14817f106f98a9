// Package server provides the HTTP API for uploading resumes and downloading generated documents.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/rendering"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a generated document does not exist or has expired
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrPayloadTooLarge indicates an upload or body over the configured limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *extraction.UnsupportedTypeError:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case *extraction.ExtractionError:
		return http.StatusInternalServerError
	}

	var decodeErr *rendering.DecodeError
	var nestingErr *rendering.NestingError
	switch {
	case errors.As(err, &decodeErr), errors.As(err, &nestingErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
