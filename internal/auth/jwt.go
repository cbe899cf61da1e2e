package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avscott/brainbox-be/internal/apperr"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 7 * 24 * time.Hour

// Claims defines the JWT claims structure.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

type contextKey string

const userIDKey = contextKey("userID")

// TokenService issues and verifies signed identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate creates a token for the given user, valid for seven days.
func (t *TokenService) Generate(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and checks a token string. Tampered, malformed and
// expired tokens all fail identically with apperr.ErrInvalidToken.
func (t *TokenService) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}

// Middleware protects routes. It requires a "Bearer <token>" Authorization
// header, validates the token, and binds the authenticated user's ID to
// the request context. The raw token does not propagate past this point.
func (t *TokenService) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeMessage(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := t.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeMessage(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's ID from a request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
