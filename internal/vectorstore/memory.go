package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// MemoryStore is a brute-force cosine-similarity vector store kept entirely in
// memory. It backs local development and tests where no Qdrant is available.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	vectorSize int
	points     []Point
}

// NewMemoryStore creates an empty in-memory vector store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memCollection),
	}
}

// EnsureCollection creates the collection if absent and validates the vector
// size if it already exists.
func (s *MemoryStore) EnsureCollection(_ context.Context, collection string, vectorSize int) error {
	if vectorSize <= 0 {
		return fmt.Errorf("invalid vector size %d", vectorSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.collections[collection]; ok {
		if existing.vectorSize != vectorSize {
			return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, existing.vectorSize)
		}
		return nil
	}

	s.collections[collection] = &memCollection{vectorSize: vectorSize}
	return nil
}

// DeleteCollection removes a collection and all its points.
func (s *MemoryStore) DeleteCollection(_ context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection]; !ok {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	delete(s.collections, collection)
	return nil
}

// ListCollections returns the names of all collections.
func (s *MemoryStore) ListCollections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Upsert inserts or updates points in the collection.
func (s *MemoryStore) Upsert(_ context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}

	for _, point := range points {
		if len(point.Vec) != coll.vectorSize {
			return fmt.Errorf("vector dimension mismatch: expected %d, got %d", coll.vectorSize, len(point.Vec))
		}
	}

	for _, point := range points {
		replaced := false
		for i := range coll.points {
			if coll.points[i].ID == point.ID {
				coll.points[i] = point
				replaced = true
				break
			}
		}
		if !replaced {
			coll.points = append(coll.points, point)
		}
	}

	return nil
}

// Search performs a brute-force cosine similarity search over the collection.
func (s *MemoryStore) Search(_ context.Context, collection string, query []float32, k int) ([]SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}

	results := make([]SearchResult, 0, len(coll.points))
	for _, point := range coll.points {
		results = append(results, SearchResult{
			PointID: point.ID,
			Score:   cosine(point.Vec, query),
			Text:    point.Text,
			Meta:    point.Meta,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// ScrollTexts returns the texts of all points in the collection in insertion order.
func (s *MemoryStore) ScrollTexts(_ context.Context, collection string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}

	texts := make([]string, 0, len(coll.points))
	for _, point := range coll.points {
		texts = append(texts, point.Text)
	}
	return texts, nil
}

// cosine computes the cosine similarity of two vectors.
func cosine(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
