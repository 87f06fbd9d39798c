package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine_deps.go -package=mocks lecturebot/internal/rag Embedder,Generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/vectorstore"
)

var (
	// ErrRetrieval marks vector store failures during retrieval.
	ErrRetrieval = errors.New("retrieval error")
	// ErrGeneration marks embedding or generation failures, including
	// mid-stream termination.
	ErrGeneration = errors.New("generation error")
)

// Embedder is the embedding capability as seen by the answer engine.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator is the streaming generation capability as seen by the answer engine.
type Generator interface {
	StreamChat(ctx context.Context, prompt string, callback func(chunk string) error) error
}

// Engine answers questions grounded in the chunks of one collection:
// it retrieves the top-k relevant chunks, assembles a grounded prompt and
// streams the generated answer fragment by fragment.
type Engine struct {
	embedder  Embedder
	store     vectorstore.VectorStore
	generator Generator
	topK      int
}

// NewEngine creates an answer engine.
func NewEngine(embedder Embedder, store vectorstore.VectorStore, generator Generator, topK int) *Engine {
	if topK <= 0 {
		topK = 5
	}
	return &Engine{
		embedder:  embedder,
		store:     store,
		generator: generator,
		topK:      topK,
	}
}

const answerPromptTemplate = `You are an assistant that answers questions about uploaded course material. Use only the information in the context below. If the context does not contain enough information to answer, say "I don't know" instead of guessing. Answer in a few detailed sentences, no more than is needed.

Context:
<context>
%s
</context>

%s`

// Stream answers the question against the given collection, forwarding each
// generated fragment to the callback as soon as it is produced. Fragments
// arrive in generation order; a nil return means the generator completed
// normally; a non-nil return is terminal and no fragment follows it.
// Cancelling ctx stops the generation promptly.
func (e *Engine) Stream(ctx context.Context, collection, question string, callback func(fragment string) error) error {
	logger := contextutil.LoggerFromContext(ctx)

	vectors, err := e.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed question", "error", err)
		return fmt.Errorf("%w: failed to embed question: %v", ErrGeneration, err)
	}
	if len(vectors) == 0 {
		return fmt.Errorf("%w: no embedding returned for question", ErrGeneration)
	}

	results, err := e.store.Search(ctx, collection, vectors[0], e.topK)
	if err != nil {
		logger.ErrorContext(ctx, "retrieval failed", "collection", collection, "error", err)
		return fmt.Errorf("%w: %v", ErrRetrieval, err)
	}

	logger.InfoContext(ctx, "retrieval completed", "collection", collection, "k", e.topK, "results", len(results))

	texts := make([]string, 0, len(results))
	for _, result := range results {
		if result.Text != "" {
			texts = append(texts, result.Text)
		}
	}
	contextBlock := strings.Join(texts, "\n\n")

	prompt := fmt.Sprintf(answerPromptTemplate, contextBlock, question)

	// The generator client guarantees the callback is never invoked after an
	// error, so forwarding directly preserves the termination contract.
	delivered := 0
	err = e.generator.StreamChat(ctx, prompt, func(chunk string) error {
		delivered++
		return callback(chunk)
	})
	if err != nil {
		logger.ErrorContext(ctx, "generation failed mid-stream", "fragments_delivered", delivered, "error", err)
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	logger.InfoContext(ctx, "answer stream completed", "collection", collection, "fragments", delivered)
	return nil
}
