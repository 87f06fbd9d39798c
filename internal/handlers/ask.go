package handlers

import (
	"encoding/json"
	"net/http"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/service"
)

// AskHandler answers questions over a chunked streaming response.
type AskHandler struct {
	bot service.BotService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(bot service.BotService) *AskHandler {
	return &AskHandler{bot: bot}
}

// AskRequest is the request payload for a question.
type AskRequest struct {
	Question string `json:"question"`
}

// ServeHTTP streams the generated answer as plain text fragments, flushing
// each fragment as soon as the generator produces it. Client disconnect
// cancels the request context, which stops the generation promptly.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	started := false
	err := h.bot.StreamAnswer(ctx, req.Question, func(fragment string) error {
		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if _, err := w.Write([]byte(fragment)); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		if !started {
			handleServiceError(ctx, w, err, "Failed to answer question")
			return
		}
		// Headers are gone; the terminal error can only surface as an aborted
		// body. Log it rather than pretending the stream ended normally.
		logger.ErrorContext(ctx, "answer stream terminated", "error", err)
		return
	}
}
