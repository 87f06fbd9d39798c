package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks lecturebot/internal/vectorstore VectorStore

import (
	"context"
	"errors"
)

// ErrCollectionNotFound is returned when an operation targets a collection
// that does not exist in the store. Callers that treat "already gone" as
// success check for it with errors.Is.
var ErrCollectionNotFound = errors.New("collection not found")

// Point represents a stored chunk: its vector, text and source metadata.
type Point struct {
	ID   string
	Vec  []float32
	Text string
	Meta map[string]any
}

// SearchResult represents a ranked hit from a similarity search.
// Higher score means more relevant; tie-break order is store-defined.
type SearchResult struct {
	PointID string
	Score   float32
	Text    string
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
// Chunk content lives only here; no other layer duplicates it.
type VectorStore interface {
	// EnsureCollection creates the collection if absent and validates the
	// vector size if it already exists.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// DeleteCollection removes a collection and all its points.
	// Returns ErrCollectionNotFound if the collection does not exist.
	DeleteCollection(ctx context.Context, collection string) error

	// ListCollections returns the names of all collections, store-defined order.
	ListCollections(ctx context.Context) ([]string, error)

	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a similarity search returning the top-k ranked results.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// ScrollTexts returns the texts of all points in the collection,
	// store-defined order. An empty collection yields an empty slice.
	ScrollTexts(ctx context.Context, collection string) ([]string, error)
}
