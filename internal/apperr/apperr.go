// Package apperr defines the stable set of failure modes the API exposes.
// Services return these sentinels (possibly wrapped); handlers map them to
// HTTP statuses and fixed JSON messages. Raw store errors never reach a
// client.
package apperr

import "errors"

var (
	// ErrInvalidEmail is returned when a signup username is not a valid
	// email address.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when a signup password fails the
	// strength policy.
	ErrWeakPassword = errors.New("weak password")

	// ErrDuplicateUser is returned when the signup username is taken.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown-user and wrong-password
	// on signin. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect credentials")

	// ErrInvalidToken covers tampered, malformed and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound covers both a missing resource and an ownership
	// mismatch, so callers cannot probe for other users' content.
	ErrNotFound = errors.New("not found or unauthorized")
)
