package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DocumentKind identifies one of the documents generated for an upload.
type DocumentKind string

const (
	KindResume      DocumentKind = "resume"
	KindCoverLetter DocumentKind = "cover_letter"
	KindResumeTeX   DocumentKind = "resume_tex"
)

// AllDocumentKinds lists every kind generated for a single upload.
var AllDocumentKinds = []DocumentKind{KindResume, KindCoverLetter, KindResumeTeX}

// Valid reports whether k is a known document kind.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindResume, KindCoverLetter, KindResumeTeX:
		return true
	}
	return false
}

// Document is a generated resume, cover letter or LaTeX source stored for download.
type Document struct {
	FileID    uuid.UUID    `json:"file_id"`
	Kind      DocumentKind `json:"kind"`
	Filename  string       `json:"filename"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
}

// StoredName is the name a document is kept under, e.g. resume_<id>.txt.
func StoredName(kind DocumentKind, fileID uuid.UUID) string {
	if kind == KindResumeTeX {
		return fmt.Sprintf("resume_%s.tex", fileID)
	}
	return fmt.Sprintf("%s_%s.txt", kind, fileID)
}

// DownloadFilename builds the attachment name for a document downloaded at t,
// e.g. optimized_resume_20240305.txt.
func DownloadFilename(kind DocumentKind, t time.Time) string {
	date := t.Format("20060102")
	switch kind {
	case KindCoverLetter:
		return fmt.Sprintf("optimized_cover_letter_%s.txt", date)
	case KindResumeTeX:
		return fmt.Sprintf("optimized_resume_%s.tex", date)
	default:
		return fmt.Sprintf("optimized_resume_%s.txt", date)
	}
}
