package handlers

import (
	"net/http"
	"time"

	"lecturebot/internal/service"
)

// DocumentsHandler serves the ingest registry.
type DocumentsHandler struct {
	bot service.BotService
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(bot service.BotService) *DocumentsHandler {
	return &DocumentsHandler{bot: bot}
}

// DocumentResponse is one ingest registry entry.
type DocumentResponse struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Source     string    `json:"source"`
	ChunkCount int       `json:"chunk_count"`
	IndexedAt  time.Time `json:"indexed_at"`
}

// ServeHTTP lists all ingested documents, newest first.
func (h *DocumentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.bot.ListDocuments(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list documents")
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, DocumentResponse{
			ID:         doc.ID,
			Collection: doc.Collection,
			Source:     doc.Source,
			ChunkCount: doc.ChunkCount,
			IndexedAt:  doc.IndexedAt,
		})
	}
	writeJSON(ctx, w, resp)
}
