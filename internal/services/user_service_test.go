package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avscott/brainbox-be/internal/apperr"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, NewEventService(db))

	created, err := users.Register("a@b.com", "Str0ng!Pw")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a@b.com", created.Username)
	assert.Empty(t, created.PasswordHash)

	authed, err := users.Authenticate("a@b.com", "Str0ng!Pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)
	assert.Empty(t, authed.PasswordHash)
}

func TestAuthenticateFailsUniformly(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, NewEventService(db))

	_, err := users.Register("a@b.com", "Str0ng!Pw")
	require.NoError(t, err)

	// Wrong password and unknown user are indistinguishable
	_, err = users.Authenticate("a@b.com", "Wr0ng!Pw!")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = users.Authenticate("nobody@b.com", "Str0ng!Pw")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, NewEventService(db))

	original, err := users.Register("a@b.com", "Str0ng!Pw")
	require.NoError(t, err)

	_, err = users.Register("a@b.com", "0ther!Pwd")
	assert.ErrorIs(t, err, apperr.ErrDuplicateUser)

	// The original record is unmodified: old credentials still work,
	// the rejected ones do not.
	authed, err := users.Authenticate("a@b.com", "Str0ng!Pw")
	require.NoError(t, err)
	assert.Equal(t, original.ID, authed.ID)

	_, err = users.Authenticate("a@b.com", "0ther!Pwd")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestRegisterPolicyGateRunsBeforeWrite(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, NewEventService(db))

	_, err := users.Register("not-an-email", "Str0ng!Pw")
	assert.ErrorIs(t, err, apperr.ErrInvalidEmail)

	_, err = users.Register("a@b.com", "weak")
	assert.ErrorIs(t, err, apperr.ErrWeakPassword)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM users").Scan(&count))
	assert.Zero(t, count)
}
