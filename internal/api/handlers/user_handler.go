package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avscott/brainbox-be/internal/apperr"
	"github.com/avscott/brainbox-be/internal/auth"
	"github.com/avscott/brainbox-be/internal/services"
)

// UserHandler handles signup and signin.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// CredentialsPayload defines the structure for signup and signin requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles new account registration.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.service.Register(payload.Username, payload.Password)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "User signed up")
	case errors.Is(err, apperr.ErrInvalidEmail):
		respondMessage(w, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, apperr.ErrWeakPassword):
		respondMessage(w, http.StatusBadRequest, "Password must be at least 8 characters long and include uppercase, lowercase, number, and special character")
	case errors.Is(err, apperr.ErrDuplicateUser):
		respondMessage(w, http.StatusBadRequest, "User already exists")
	default:
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondMessage(w, http.StatusInternalServerError, "Error signing up")
	}
}

// Signin authenticates a user and returns a fresh token.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			respondMessage(w, http.StatusForbidden, "Incorrect credentials")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to authenticate user")
		respondMessage(w, http.StatusInternalServerError, "Error signing in")
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		respondMessage(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
