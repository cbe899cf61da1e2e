package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avscott/brainbox-be/internal/apperr"
	"github.com/avscott/brainbox-be/internal/auth"
	"github.com/avscott/brainbox-be/internal/models"
)

// UserServiceProvider defines the interface for user account operations.
type UserServiceProvider interface {
	Register(username, password string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserService provides business logic for accounts.
type UserService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, events EventServiceProvider) *UserService {
	return &UserService{db: db, events: events}
}

// Register validates the credentials, hashes the password and creates the
// account. The policy gate runs before any write; a taken username fails
// with apperr.ErrDuplicateUser.
func (s *UserService) Register(username, password string) (models.User, error) {
	if err := auth.ValidateSignup(username, password); err != nil {
		return models.User{}, err
	}

	var count int
	row := s.db.QueryRow("SELECT COUNT(1) FROM users WHERE username = ?", username)
	if err := row.Scan(&count); err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, apperr.ErrDuplicateUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Username, user.PasswordHash); err != nil {
		// The pre-check above races with concurrent signups; the unique
		// index is authoritative.
		if isUniqueViolation(err) {
			return models.User{}, apperr.ErrDuplicateUser
		}
		return models.User{}, err
	}

	s.events.Record(user.ID, "signup", "Account created")

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown usernames and wrong
// passwords both fail with apperr.ErrInvalidCredentials.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperr.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, apperr.ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
