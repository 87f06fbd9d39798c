package handlers

import (
	"encoding/json"
	"net/http"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/quiz"
	"lecturebot/internal/service"
)

// QuizHandler serves quiz generation, the pending-question queue and answers.
type QuizHandler struct {
	bot service.BotService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(bot service.BotService) *QuizHandler {
	return &QuizHandler{bot: bot}
}

// GenerateResponse reports how many questions the generator produced.
type GenerateResponse struct {
	Questions int `json:"questions"`
}

// QuestionResponse is one pending question as shown to the client.
// The correct option is withheld until the answer is submitted.
type QuestionResponse struct {
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
	Order    []string          `json:"order"`
}

// AnswerRequest is the submitted answer letter.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerResponse reports the outcome of an answer.
type AnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
	Remaining     int    `json:"remaining"`
}

// ScoreResponse is the session's running score.
type ScoreResponse struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Generate builds quiz questions from the active collection's chunks.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.bot.GenerateQuiz(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to generate quiz")
		return
	}
	writeJSON(ctx, w, GenerateResponse{Questions: count})
}

// Next returns the head of the pending queue, or 204 when all questions are
// answered.
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	question, ok := h.bot.NextQuestion()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(r.Context(), w, toQuestionResponse(question))
}

// Answer checks the submitted letter against the head question.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, ok, err := h.bot.SubmitAnswer(req.Answer)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to check answer")
		return
	}
	if !ok {
		writeError(w, http.StatusConflict, "No pending question")
		return
	}

	writeJSON(ctx, w, AnswerResponse{
		Correct:       result.Correct,
		CorrectOption: result.CorrectOption,
		Explanation:   result.Explanation,
		Remaining:     result.Remaining,
	})
}

// Score returns the running correct/wrong counters.
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	correct, wrong := h.bot.Score()
	writeJSON(r.Context(), w, ScoreResponse{Correct: correct, Wrong: wrong})
}

// toQuestionResponse converts a quiz question for display, preserving option
// order and hiding the correct answer.
func toQuestionResponse(q quiz.Question) QuestionResponse {
	options := make(map[string]string, len(q.Options))
	order := make([]string, 0, len(q.Options))
	for _, option := range q.Options {
		options[option.Key] = option.Text
		order = append(order, option.Key)
	}
	return QuestionResponse{
		Question: q.Text,
		Options:  options,
		Order:    order,
	}
}
