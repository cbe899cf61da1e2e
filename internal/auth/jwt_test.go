package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avscott/brainbox-be/internal/apperr"
)

const testSecret = "test-signing-secret"

func TestGenerateAndValidate(t *testing.T) {
	tokens := NewTokenService(testSecret)

	tokenStr, err := tokens.Generate("user-123")
	require.NoError(t, err)

	claims, err := tokens.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)

	// Expiry sits seven days out
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsTampering(t *testing.T) {
	tokens := NewTokenService(testSecret)

	tokenStr, err := tokens.Generate("user-123")
	require.NoError(t, err)

	_, err = tokens.Validate(tokenStr + "x")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)

	_, err = tokens.Validate("not.a.token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)

	// Signed with a different secret
	other := NewTokenService("some-other-secret")
	foreign, err := other.Generate("user-123")
	require.NoError(t, err)
	_, err = tokens.Validate(foreign)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	tokens := NewTokenService(testSecret)

	claims := &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tokens.Validate(expired)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokenService(testSecret)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	handler := tokens.Middleware()(next)

	validToken, err := tokens.Generate("user-123")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", validToken, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusForbidden},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, "user-123", gotUserID)
}
