package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveDocument inserts or replaces a generated document.
// CreatedAt is set from the database when zero.
func (db *DB) SaveDocument(ctx context.Context, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	if !doc.Kind.Valid() {
		return fmt.Errorf("invalid document kind: %q", doc.Kind)
	}

	var createdAt *time.Time
	if !doc.CreatedAt.IsZero() {
		createdAt = &doc.CreatedAt
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO generated_documents (file_id, kind, filename, content, created_at)
		 VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		 ON CONFLICT (file_id, kind) DO UPDATE
		 SET filename = EXCLUDED.filename, content = EXCLUDED.content, created_at = EXCLUDED.created_at
		 RETURNING created_at`,
		doc.FileID, string(doc.Kind), doc.Filename, doc.Content, createdAt,
	).Scan(&doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// GetDocument retrieves a generated document. Returns nil, nil when not found.
func (db *DB) GetDocument(ctx context.Context, fileID uuid.UUID, kind DocumentKind) (*Document, error) {
	var doc Document
	var kindStr string
	err := db.pool.QueryRow(ctx,
		`SELECT file_id, kind, filename, content, created_at
		 FROM generated_documents
		 WHERE file_id = $1 AND kind = $2`,
		fileID, string(kind),
	).Scan(&doc.FileID, &kindStr, &doc.Filename, &doc.Content, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	doc.Kind = DocumentKind(kindStr)
	return &doc, nil
}

// DeleteExpiredDocuments removes documents created before olderThan and
// returns how many rows were deleted.
func (db *DB) DeleteExpiredDocuments(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM generated_documents WHERE created_at < $1`,
		olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired documents: %w", err)
	}
	return tag.RowsAffected(), nil
}
