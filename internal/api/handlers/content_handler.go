package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/avscott/brainbox-be/internal/apperr"
	"github.com/avscott/brainbox-be/internal/auth"
	"github.com/avscott/brainbox-be/internal/services"
)

// ContentHandler handles HTTP requests for a user's saved content.
type ContentHandler struct {
	service services.ContentServiceProvider
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service services.ContentServiceProvider) *ContentHandler {
	return &ContentHandler{service: service}
}

// ContentPayload defines the structure for content creation requests.
type ContentPayload struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"`
}

// Create handles adding a new content item for the authenticated user.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	var payload ContentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.Create(userID, payload.Title, payload.Link, payload.Type); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to add content")
		respondMessage(w, http.StatusInternalServerError, "Error adding content")
		return
	}

	respondMessage(w, http.StatusOK, "Content added")
}

// List handles retrieving all content owned by the authenticated user.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	content, err := h.service.ListOwned(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve content")
		respondMessage(w, http.StatusInternalServerError, "Error retrieving content")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"content": content})
}

// Delete handles removing a content item owned by the authenticated user.
// A foreign or unknown id yields the same 404 either way.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	contentID := chi.URLParam(r, "id")
	if err := h.service.Delete(userID, contentID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Content not found or unauthorized")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Str("content_id", contentID).Msg("Failed to delete content")
		respondMessage(w, http.StatusInternalServerError, "Error deleting content")
		return
	}

	respondMessage(w, http.StatusOK, "Deleted successfully")
}
