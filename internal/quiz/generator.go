package quiz

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_client.go -package=mocks lecturebot/internal/quiz ChatClient

import (
	"context"
	"fmt"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/vectorstore"
)

// ChatClient is the single-shot generation capability used for quiz authoring.
type ChatClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Generator produces quiz questions from the stored chunks of a collection by
// driving the generation model with a fixed output template and strictly
// parsing its responses.
type Generator struct {
	client ChatClient
	store  vectorstore.VectorStore
}

// NewGenerator creates a quiz generator.
func NewGenerator(client ChatClient, store vectorstore.VectorStore) *Generator {
	return &Generator{
		client: client,
		store:  store,
	}
}

const quizPromptTemplate = `You are an assistant that creates single-choice questions from a given text.
Steps:
1. Generate one question that tests the content of the text.
2. Give three possible answers (A, B, C), exactly one of which is correct.
3. Mark which answer is correct.

Follow the format below exactly as written, with no additional formatting.

Format:
Question: [your generated question]
A) [answer 1]
B) [answer 2]
C) [answer 3]
Correct answer: [e.g. A]

Here is the given text:
%s`

// Generate builds one question per stored chunk of the collection, in the
// store's iteration order. Responses that fail the strict template parse are
// dropped silently; the batch never aborts because of a malformed response.
// An empty collection yields an empty slice, not an error.
func (g *Generator) Generate(ctx context.Context, collection string) ([]Question, error) {
	logger := contextutil.LoggerFromContext(ctx)

	texts, err := g.store.ScrollTexts(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection chunks: %w", err)
	}

	questions := make([]Question, 0, len(texts))
	for i, text := range texts {
		prompt := fmt.Sprintf(quizPromptTemplate, text)

		raw, err := g.client.Chat(ctx, prompt)
		if err != nil {
			return questions, fmt.Errorf("generation failed on chunk %d: %w", i, err)
		}

		question, ok := ParseQuestion(raw)
		if !ok {
			logger.WarnContext(ctx, "discarding unparseable quiz response", "collection", collection, "chunk", i)
			continue
		}
		questions = append(questions, question)
	}

	logger.InfoContext(ctx, "quiz generated", "collection", collection, "chunks", len(texts), "questions", len(questions))
	return questions, nil
}
