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

// ShareHandler handles publishing and resolving public share links.
type ShareHandler struct {
	service services.ShareServiceProvider
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(service services.ShareServiceProvider) *ShareHandler {
	return &ShareHandler{service: service}
}

// SharePayload defines the structure for share toggle requests.
type SharePayload struct {
	Share bool `json:"share"`
}

// Toggle enables or disables the caller's public share link. Enabling
// returns the share path; disabling returns "/share/null".
func (h *ShareHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	var payload SharePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !payload.Share {
		if err := h.service.Disable(userID); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to disable sharing")
			respondMessage(w, http.StatusInternalServerError, "Error updating share link")
			return
		}
		respondMessage(w, http.StatusOK, "/share/null")
		return
	}

	hash, err := h.service.Enable(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to enable sharing")
		respondMessage(w, http.StatusInternalServerError, "Error updating share link")
		return
	}

	respondMessage(w, http.StatusOK, "/share/"+hash)
}

// Resolve serves a shared collection to anyone holding the hash. No
// authentication is required; the hash itself is the capability.
func (h *ShareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareLink")

	username, content, err := h.service.Resolve(hash)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondMessage(w, http.StatusLengthRequired, "Sorry incorrect input")
			return
		}
		log.Error().Err(err).Str("hash", hash).Msg("Failed to resolve share link")
		respondMessage(w, http.StatusInternalServerError, "Error resolving share link")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"username": username,
		"content":  content,
	})
}
