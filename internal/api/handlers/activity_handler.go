package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/avscott/brainbox-be/internal/auth"
	"github.com/avscott/brainbox-be/internal/services"
)

// ActivityHandler handles HTTP requests for a user's activity log.
type ActivityHandler struct {
	service services.EventServiceProvider
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(service services.EventServiceProvider) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetRecent handles the request to get the caller's recent activity.
func (h *ActivityHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	events, err := h.service.GetRecent(userID, limit)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve activity")
		respondMessage(w, http.StatusInternalServerError, "Error retrieving activity")
		return
	}

	respondJSON(w, http.StatusOK, events)
}
