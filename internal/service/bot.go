package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_bot_service.go -package=mocks lecturebot/internal/service BotService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lecturebot/internal/collection"
	"lecturebot/internal/contextutil"
	"lecturebot/internal/extract"
	"lecturebot/internal/ingest"
	"lecturebot/internal/quiz"
	"lecturebot/internal/rag"
	"lecturebot/internal/storage"
)

// BotService is the transport-facing contract of the core: exactly the
// operations the chat/quiz client may invoke, returning plain structured
// values with no dependency on any transport framing.
type BotService interface {
	Ingest(ctx context.Context, filename string, content []byte) (IngestResult, error)
	StreamAnswer(ctx context.Context, question string, callback func(fragment string) error) error
	SelectCollection(ctx context.Context, name string) (string, error)
	ActiveCollection() string
	ListCollections(ctx context.Context) ([]string, error)
	DeleteCollection(ctx context.Context, name string) (bool, error)
	GenerateQuiz(ctx context.Context) (int, error)
	NextQuestion() (quiz.Question, bool)
	SubmitAnswer(selected string) (quiz.AnswerResult, bool, error)
	Score() (correct, wrong int)
	ListDocuments(ctx context.Context) ([]*storage.Document, error)
}

// Bot is the injected service object behind the transport layer. It composes
// the collection manager, the ingestion pipeline, the answer engine and the
// quiz generator; handlers receive it as a dependency, never as a global.
type Bot struct {
	manager   *collection.Manager
	extractor *extract.Extractor
	pipeline  *ingest.Pipeline
	engine    *rag.Engine
	quizzer   *quiz.Generator
	queue     *quiz.Queue
	docRepo   storage.DocumentStore
}

// NewBot creates the bot service.
func NewBot(
	manager *collection.Manager,
	extractor *extract.Extractor,
	pipeline *ingest.Pipeline,
	engine *rag.Engine,
	quizzer *quiz.Generator,
	queue *quiz.Queue,
	docRepo storage.DocumentStore,
) *Bot {
	return &Bot{
		manager:   manager,
		extractor: extractor,
		pipeline:  pipeline,
		engine:    engine,
		quizzer:   quizzer,
		queue:     queue,
		docRepo:   docRepo,
	}
}

// IngestResult reports the outcome of indexing one document.
type IngestResult struct {
	Collection    string
	ChunksIndexed int
}

// Ingest indexes an uploaded document: the filename becomes (or selects) the
// target collection, the content is extracted to pages, chunked, sanitized,
// embedded and written to the vector store. Partial progress is reported in
// the result even when an error is returned.
func (b *Bot) Ingest(ctx context.Context, filename string, content []byte) (IngestResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(filename) == "" {
		return IngestResult{}, &ValidationError{Field: "filename", Message: "cannot be empty"}
	}

	name, err := b.manager.GetOrCreate(ctx, filename)
	if err != nil {
		return IngestResult{}, &ValidationError{Field: "filename", Message: err.Error()}
	}

	pages, err := b.extractor.Pages(filename, content)
	if err != nil {
		return IngestResult{Collection: name}, WrapError(err, "failed to extract document text")
	}

	// Hold the per-name lock for the whole write so a concurrent delete cannot
	// remove the collection mid-ingestion.
	unlock := b.manager.LockName(name)
	indexed, err := b.pipeline.Ingest(ctx, name, filename, pages)
	unlock()

	result := IngestResult{Collection: name, ChunksIndexed: indexed}
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrEmbedding):
			return result, fmt.Errorf("%w: %v", ErrExternalService, err)
		case errors.Is(err, ingest.ErrStoreWrite):
			return result, fmt.Errorf("%w: %v", ErrStore, err)
		default:
			return result, err
		}
	}

	if _, err := b.docRepo.Record(ctx, name, filename, indexed); err != nil {
		// The chunks are indexed; a registry failure must not undo that.
		logger.WarnContext(ctx, "failed to record ingest", "source", filename, "error", err)
	}

	return result, nil
}

// StreamAnswer answers a question grounded in the active collection, streaming
// fragments through the callback. The active collection is captured at start:
// switching collections mid-stream does not affect an in-flight answer. Blank
// questions are rejected before any model call.
func (b *Bot) StreamAnswer(ctx context.Context, question string, callback func(fragment string) error) error {
	if strings.TrimSpace(question) == "" {
		return &ValidationError{Field: "question", Message: "please enter a valid question"}
	}

	target := b.manager.Active()

	if err := b.engine.Stream(ctx, target, question, callback); err != nil {
		if errors.Is(err, rag.ErrRetrieval) {
			return fmt.Errorf("%w: %v", ErrStore, err)
		}
		return fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return nil
}

// SelectCollection normalizes the name, creates the collection if absent and
// makes it active. Returns the normalized name.
func (b *Bot) SelectCollection(ctx context.Context, name string) (string, error) {
	normalized, err := b.manager.GetOrCreate(ctx, name)
	if err != nil {
		return "", &ValidationError{Field: "collection_name", Message: err.Error()}
	}
	return normalized, nil
}

// ActiveCollection returns the name of the currently active collection.
func (b *Bot) ActiveCollection() string {
	return b.manager.Active()
}

// ListCollections returns all collection names.
func (b *Bot) ListCollections(ctx context.Context) ([]string, error) {
	names, err := b.manager.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return names, nil
}

// DeleteCollection removes a collection. Deleting a collection that is already
// gone is reported as (false, nil): idempotent success, not an error.
func (b *Bot) DeleteCollection(ctx context.Context, name string) (bool, error) {
	deleted, err := b.manager.Delete(ctx, name)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return deleted, nil
}

// GenerateQuiz builds quiz questions from every chunk of the active collection
// and loads them into the pending queue. Returns the number of questions
// generated; an empty collection yields zero, not an error.
func (b *Bot) GenerateQuiz(ctx context.Context) (int, error) {
	target := b.manager.Active()

	questions, err := b.quizzer.Generate(ctx, target)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	b.queue.Fill(questions)
	return len(questions), nil
}

// NextQuestion returns the head of the pending queue without consuming it.
// ok is false when all questions have been answered.
func (b *Bot) NextQuestion() (quiz.Question, bool) {
	return b.queue.Peek()
}

// SubmitAnswer checks the selected letter against the head question and
// advances the queue. ok is false when the queue is empty.
func (b *Bot) SubmitAnswer(selected string) (quiz.AnswerResult, bool, error) {
	if strings.TrimSpace(selected) == "" {
		return quiz.AnswerResult{}, false, &ValidationError{Field: "answer", Message: "cannot be empty"}
	}
	result, ok := b.queue.CheckAnswer(selected)
	return result, ok, nil
}

// Score returns the session's running correct/wrong counters.
func (b *Bot) Score() (correct, wrong int) {
	return b.queue.Score()
}

// ListDocuments returns the ingest registry entries, newest first.
func (b *Bot) ListDocuments(ctx context.Context) ([]*storage.Document, error) {
	docs, err := b.docRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return docs, nil
}
