package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/generation"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/rendering"
	"github.com/jonathan/resume-optimizer/internal/resume"
)

// multipartMemory is how much of a multipart upload is held in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// ExtractResponse represents the response for /api/extract-and-optimize
type ExtractResponse struct {
	Success                 bool           `json:"success"`
	Message                 string         `json:"message"`
	ExtractedText           string         `json:"extractedText"`
	ResumeData              *resume.Record `json:"resumeData"`
	FileID                  string         `json:"fileId"`
	OptimizedResumeURL      string         `json:"optimizedResumeUrl"`
	OptimizedCoverLetterURL string         `json:"optimizedCoverLetterUrl"`
	OptimizedResumeLatexURL string         `json:"optimizedResumeLatexUrl"`
}

// ParseRequest is the JSON form of a /api/parse request
type ParseRequest struct {
	Text string `json:"text"`
}

// upload is a validated file from a multipart request.
type upload struct {
	filename string
	kind     extraction.Kind
	data     []byte
}

// handleExtractAndOptimize extracts text from an uploaded resume, parses it and
// stores the generated resume, cover letter and LaTeX resume for download.
func (s *Server) handleExtractAndOptimize(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	text, err := extraction.Extract(up.kind, up.data)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	record := resume.ParseText(text)
	jobDescription := ingestion.CleanText(r.FormValue("job_description"))
	now := s.now()

	latex, err := generation.ResumeLaTeX(record, jobDescription, now)
	if err != nil {
		s.fail(w, r, fmt.Errorf("failed to render LaTeX resume: %w", err))
		return
	}

	fileID := uuid.New()
	contents := map[db.DocumentKind]string{
		db.KindResume:      generation.Resume(record, jobDescription, now),
		db.KindCoverLetter: generation.CoverLetter(record, jobDescription, now),
		db.KindResumeTeX:   latex,
	}

	g, ctx := errgroup.WithContext(r.Context())
	for _, kind := range db.AllDocumentKinds {
		doc := &db.Document{
			FileID:    fileID,
			Kind:      kind,
			Filename:  db.StoredName(kind, fileID),
			Content:   contents[kind],
			CreatedAt: now,
		}
		g.Go(func() error {
			return s.store.SaveDocument(ctx, doc)
		})
	}
	if err := g.Wait(); err != nil {
		s.fail(w, r, fmt.Errorf("failed to store generated documents: %w", err))
		return
	}

	base := baseURL(r)
	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Success:                 true,
		Message:                 "Documents processed and optimized successfully",
		ExtractedText:           extraction.Preview(text),
		ResumeData:              record,
		FileID:                  fileID.String(),
		OptimizedResumeURL:      fmt.Sprintf("%s/api/download/resume/%s", base, fileID),
		OptimizedCoverLetterURL: fmt.Sprintf("%s/api/download/cover-letter/%s", base, fileID),
		OptimizedResumeLatexURL: fmt.Sprintf("%s/api/download/resume-tex/%s", base, fileID),
	})
}

// readUpload validates the multipart "file" field and reads it fully.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isTooLarge(err) {
			return nil, &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, &ErrValidation{Field: "file", Message: "No file provided"}
		}
		return nil, &ErrValidation{Field: "file", Message: "Invalid upload: " + err.Error()}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, &ErrValidation{Field: "file", Message: "No file provided"}
		}
		return nil, &ErrValidation{Field: "file", Message: "Invalid upload: " + err.Error()}
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, &ErrValidation{Field: "file", Message: "No file selected"}
	}
	if !extraction.AllowedFile(header.Filename) {
		return nil, &ErrValidation{Field: "file", Message: "File type not allowed"}
	}

	kind, err := extraction.DetectKind(header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return &upload{filename: header.Filename, kind: kind, data: data}, nil
}

// handleDownload serves a stored document of the given kind as an attachment.
func (s *Server) handleDownload(kind db.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			s.fail(w, r, &ErrValidation{Field: "id", Message: "Invalid file id"})
			return
		}

		doc, err := s.store.GetDocument(r.Context(), fileID, kind)
		if err != nil {
			s.fail(w, r, fmt.Errorf("failed to load document: %w", err))
			return
		}
		if doc == nil || s.expired(doc) {
			s.fail(w, r, &ErrNotFound{Resource: string(kind), ID: fileID.String()})
			return
		}

		contentType := "text/plain; charset=utf-8"
		if kind == db.KindResumeTeX {
			contentType = "application/x-tex; charset=utf-8"
		}
		disposition := mime.FormatMediaType("attachment", map[string]string{
			"filename": db.DownloadFilename(kind, s.now()),
		})

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", disposition)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, doc.Content)
	}
}

func (s *Server) expired(doc *db.Document) bool {
	return s.documentTTL > 0 && s.now().Sub(doc.CreatedAt) > s.documentTTL
}

// handleEscapeLaTeX escapes every string in a JSON document, keeping its shape and key order.
func (s *Server) handleEscapeLaTeX(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	value, err := rendering.DecodeJSON(body)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := rendering.Escape(value).MarshalJSON()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(out, '\n'))
}

// handleParse parses resume text, sent either as a plain body or as {"text": "..."}.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	text := string(body)
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/json" {
		var req ParseRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.fail(w, r, &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()})
			return
		}
		text = req.Text
	} else if !utf8.ValidString(text) {
		s.fail(w, r, &ErrValidation{Field: "body", Message: "Body must be UTF-8 text"})
		return
	}

	s.jsonResponse(w, http.StatusOK, resume.ParseText(text))
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUploadBytes))
	if err != nil {
		if isTooLarge(err) {
			return nil, &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large")
}
