package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/service"
)

// CollectionsHandler manages the named collections and the active pointer.
type CollectionsHandler struct {
	bot service.BotService
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(bot service.BotService) *CollectionsHandler {
	return &CollectionsHandler{bot: bot}
}

// CollectionRequest carries a collection name.
type CollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

// CollectionResponse reports a collection name.
type CollectionResponse struct {
	CollectionName string `json:"collection_name"`
}

// DeleteResponse reports the outcome of a delete. Deleting a collection that
// is already gone is success with a "nothing to delete" indication.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// List returns all collection names.
func (h *CollectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := h.bot.ListCollections(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list collections")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(ctx, w, names)
}

// Current returns the active collection.
func (h *CollectionsHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, CollectionResponse{CollectionName: h.bot.ActiveCollection()})
}

// Select normalizes the requested name, creates the collection if absent and
// makes it active.
func (h *CollectionsHandler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name, err := h.bot.SelectCollection(ctx, req.CollectionName)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to select collection")
		return
	}

	writeJSON(ctx, w, CollectionResponse{CollectionName: name})
}

// Delete removes the named collection and all its chunks.
func (h *CollectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := chi.URLParam(r, "name")
	deleted, err := h.bot.DeleteCollection(ctx, name)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to delete collection")
		return
	}

	resp := DeleteResponse{Deleted: deleted}
	if deleted {
		resp.Message = "Collection " + name + " deleted"
	} else {
		resp.Message = "Collection " + name + " does not exist, nothing to delete"
	}
	writeJSON(ctx, w, resp)
}
