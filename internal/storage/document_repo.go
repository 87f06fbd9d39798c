package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is one row of the ingest registry: which source was indexed into
// which collection, when, and how many chunks it produced. The registry is
// operational bookkeeping only; chunk content lives in the vector store.
type Document struct {
	ID         string
	Collection string
	Source     string
	ChunkCount int
	IndexedAt  time.Time
}

// DocumentStore provides access to the ingest registry.
type DocumentStore interface {
	Record(ctx context.Context, collection, source string, chunkCount int) (*Document, error)
	ListAll(ctx context.Context) ([]*Document, error)
}

// DocumentRepo implements DocumentStore against SQLite.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new document repository.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Record inserts an ingest entry and returns it.
func (r *DocumentRepo) Record(ctx context.Context, collection, source string, chunkCount int) (*Document, error) {
	doc := &Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Source:     source,
		ChunkCount: chunkCount,
		IndexedAt:  time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, source, chunk_count, indexed_at) VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Collection, doc.Source, doc.ChunkCount, doc.IndexedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return doc, nil
}

// ListAll returns all ingest entries, newest first.
func (r *DocumentRepo) ListAll(ctx context.Context) ([]*Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, collection, source, chunk_count, indexed_at FROM documents ORDER BY indexed_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*Document
	for rows.Next() {
		doc := &Document{}
		if err := rows.Scan(&doc.ID, &doc.Collection, &doc.Source, &doc.ChunkCount, &doc.IndexedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}
