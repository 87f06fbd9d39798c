package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/vectorstore"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks lecturebot/internal/ingest Embedder

var (
	// ErrEmbedding marks failures of the embedding capability
	// (unreachable service or malformed output).
	ErrEmbedding = errors.New("embedding service error")
	// ErrStoreWrite marks persistence failures in the vector store.
	ErrStoreWrite = errors.New("vector store write error")
)

// embedBatchSize bounds the number of texts sent to the embedding service per
// request; upserts happen in the same batches so a mid-ingest failure leaves
// an accurate count of chunks already indexed.
const embedBatchSize = 32

// Embedder is the embedding capability as seen by the ingestion pipeline.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Pipeline indexes one document end-to-end: window chunking, sanitization,
// embedding and the vector store write.
type Pipeline struct {
	embedder  Embedder
	store     vectorstore.VectorStore
	chunkSize int
	overlap   int
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(embedder Embedder, store vectorstore.VectorStore, chunkSize, overlap int) *Pipeline {
	return &Pipeline{
		embedder:  embedder,
		store:     store,
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// chunkRecord is a sanitized window waiting for its embedding.
type chunkRecord struct {
	text  string
	page  int
	index int
}

// Ingest indexes the document's pages into the given collection and returns
// the number of chunks indexed. Each page is chunked independently; chunks
// never span pages. On failure the count of chunks successfully indexed before
// the error is returned alongside it, never silently swallowed.
func (p *Pipeline) Ingest(ctx context.Context, collection, sourceID string, pages []string) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var records []chunkRecord
	for pageNum, page := range pages {
		for _, window := range SplitWindows(page, p.chunkSize, p.overlap) {
			cleaned := Sanitize(window)
			if cleaned == "" {
				continue
			}
			records = append(records, chunkRecord{
				text:  cleaned,
				page:  pageNum,
				index: len(records),
			})
		}
	}

	if len(records) == 0 {
		logger.WarnContext(ctx, "document produced no chunks", "source", sourceID)
		return 0, nil
	}

	indexed := 0
	for start := 0; start < len(records); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		texts := make([]string, len(batch))
		for i, record := range batch {
			texts[i] = record.text
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			logger.ErrorContext(ctx, "embedding failed", "source", sourceID, "indexed", indexed, "error", err)
			return indexed, fmt.Errorf("%w: %v", ErrEmbedding, err)
		}

		points := make([]vectorstore.Point, len(batch))
		for i, record := range batch {
			points[i] = vectorstore.Point{
				ID:   uuid.NewString(),
				Vec:  vectors[i],
				Text: record.text,
				Meta: map[string]any{
					"source": sourceID,
					"page":   int64(record.page),
					"chunk":  int64(record.index),
				},
			}
		}

		if err := p.store.Upsert(ctx, collection, points); err != nil {
			logger.ErrorContext(ctx, "vector store write failed", "source", sourceID, "indexed", indexed, "error", err)
			return indexed, fmt.Errorf("%w: %v", ErrStoreWrite, err)
		}
		indexed += len(batch)
	}

	logger.InfoContext(ctx, "document indexed", "source", sourceID, "collection", collection, "chunks", indexed)
	return indexed, nil
}
