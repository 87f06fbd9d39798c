package handlers

import (
	"io"
	"net/http"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/service"
)

// maxUploadBytes bounds the size of an uploaded document.
const maxUploadBytes = 32 << 20 // 32 MiB

// UploadHandler handles document uploads for ingestion.
type UploadHandler struct {
	bot service.BotService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(bot service.BotService) *UploadHandler {
	return &UploadHandler{bot: bot}
}

// UploadResponse is the response payload for a successful upload.
type UploadResponse struct {
	Message       string `json:"message"`
	Collection    string `json:"collection"`
	ChunksIndexed int    `json:"chunks_indexed"`
}

// ServeHTTP accepts a multipart upload, ingests the file into the collection
// derived from its filename and reports how many chunks were indexed.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file field", "error", err)
		writeError(w, http.StatusBadRequest, "File field is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	result, err := h.bot.Ingest(ctx, header.Filename, content)
	if err != nil {
		// Partial progress is part of the contract; log it before mapping the error.
		logger.ErrorContext(ctx, "ingest failed", "file", header.Filename, "chunks_indexed", result.ChunksIndexed, "error", err)
		handleServiceError(ctx, w, err, "Failed to ingest document")
		return
	}

	writeJSON(ctx, w, UploadResponse{
		Message:       "File '" + header.Filename + "' uploaded successfully",
		Collection:    result.Collection,
		ChunksIndexed: result.ChunksIndexed,
	})
}
