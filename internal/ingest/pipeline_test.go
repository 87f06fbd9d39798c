package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"lecturebot/internal/ingest/mocks"
	"lecturebot/internal/vectorstore"
)

func embedFixed(texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

func TestPipeline_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := vectorstore.NewMemoryStore()
	if err := store.EnsureCollection(ctx, "library", 2); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}

	embedder := mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
			return embedFixed(texts)
		}).
		AnyTimes()

	pipeline := NewPipeline(embedder, store, 10, 2)

	// Two pages: 18 runes chunk to [0,10)+[8,18) each, so 4 chunks total.
	pages := []string{
		strings.Repeat("a", 18),
		strings.Repeat("b", 18),
	}

	indexed, err := pipeline.Ingest(ctx, "library", "notes.pdf", pages)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if indexed != 4 {
		t.Errorf("Ingest() indexed = %d, want 4", indexed)
	}

	texts, err := store.ScrollTexts(ctx, "library")
	if err != nil {
		t.Fatalf("ScrollTexts() error = %v", err)
	}
	if len(texts) != 4 {
		t.Fatalf("store holds %d chunks, want 4", len(texts))
	}
	if texts[0] != strings.Repeat("a", 10) {
		t.Errorf("first stored chunk = %q", texts[0])
	}

	// Page attribution survives into the stored metadata.
	results, err := store.Search(ctx, "library", []float32{1, 0}, 4)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	pagesSeen := map[int64]bool{}
	for _, r := range results {
		if r.Meta["source"] != "notes.pdf" {
			t.Errorf("stored chunk source = %v, want notes.pdf", r.Meta["source"])
		}
		page, _ := r.Meta["page"].(int64)
		pagesSeen[page] = true
	}
	if !pagesSeen[0] || !pagesSeen[1] {
		t.Errorf("stored chunk pages = %v, want both 0 and 1", pagesSeen)
	}
}

func TestPipeline_Ingest_EmptyDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := vectorstore.NewMemoryStore()
	embedder := mocks.NewMockEmbedder(ctrl)
	pipeline := NewPipeline(embedder, store, 10, 2)

	tests := []struct {
		name  string
		pages []string
	}{
		{name: "no pages", pages: nil},
		{name: "empty pages", pages: []string{"", ""}},
		{name: "pages of only invalid bytes", pages: []string{"\x00\x00", "\xed\xa0\x80"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No embedding or store call may happen for an empty document.
			indexed, err := pipeline.Ingest(context.Background(), "library", "empty.pdf", tt.pages)
			if err != nil {
				t.Fatalf("Ingest() error = %v", err)
			}
			if indexed != 0 {
				t.Errorf("Ingest() indexed = %d, want 0", indexed)
			}
		})
	}
}

func TestPipeline_Ingest_EmbeddingFailureKeepsPartialCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := vectorstore.NewMemoryStore()
	if err := store.EnsureCollection(ctx, "library", 2); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}

	// 400 runes at size 10 / overlap 0 produce 40 chunks: one full batch of 32
	// and a second batch that fails.
	calls := 0
	embedder := mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
			calls++
			if calls > 1 {
				return nil, fmt.Errorf("model unavailable")
			}
			return embedFixed(texts)
		}).
		Times(2)

	pipeline := NewPipeline(embedder, store, 10, 0)

	indexed, err := pipeline.Ingest(ctx, "library", "big.pdf", []string{strings.Repeat("a", 400)})
	if !errors.Is(err, ErrEmbedding) {
		t.Fatalf("Ingest() error = %v, want ErrEmbedding", err)
	}
	if indexed != 32 {
		t.Errorf("Ingest() indexed = %d, want 32", indexed)
	}

	texts, err := store.ScrollTexts(ctx, "library")
	if err != nil {
		t.Fatalf("ScrollTexts() error = %v", err)
	}
	if len(texts) != 32 {
		t.Errorf("store holds %d chunks, want the 32 indexed before the failure", len(texts))
	}
}

func TestPipeline_Ingest_StoreWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The collection was never created, so the first upsert fails.
	store := vectorstore.NewMemoryStore()

	embedder := mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
			return embedFixed(texts)
		})

	pipeline := NewPipeline(embedder, store, 10, 0)

	indexed, err := pipeline.Ingest(context.Background(), "missing", "notes.pdf", []string{"some page text"})
	if !errors.Is(err, ErrStoreWrite) {
		t.Fatalf("Ingest() error = %v, want ErrStoreWrite", err)
	}
	if indexed != 0 {
		t.Errorf("Ingest() indexed = %d, want 0", indexed)
	}
}
