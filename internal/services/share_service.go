package services

import (
	"database/sql"
	"fmt"

	"github.com/avscott/brainbox-be/internal/apperr"
	"github.com/avscott/brainbox-be/internal/models"
	"github.com/avscott/brainbox-be/internal/sharecode"
)

// ShareServiceProvider defines the interface for share-link operations.
type ShareServiceProvider interface {
	Enable(userID string) (string, error)
	Disable(userID string) error
	Resolve(hash string) (string, []models.Content, error)
}

// ShareService toggles public visibility of a user's collection.
type ShareService struct {
	db      *sql.DB
	content ContentServiceProvider
	events  EventServiceProvider
}

// NewShareService creates a new ShareService.
func NewShareService(db *sql.DB, content ContentServiceProvider, events EventServiceProvider) *ShareService {
	return &ShareService{db: db, content: content, events: events}
}

// Enable turns on public sharing for the user and returns the share hash.
// It is idempotent: if a link already exists its hash is returned
// unchanged, so a user holds at most one active link.
func (s *ShareService) Enable(userID string) (string, error) {
	var hash string
	err := s.db.QueryRow("SELECT hash FROM share_links WHERE user_id = ?", userID).Scan(&hash)
	if err == nil {
		return hash, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	hash, err = sharecode.New(sharecode.Length)
	if err != nil {
		return "", fmt.Errorf("failed to generate share hash: %w", err)
	}

	if _, err = s.db.Exec("INSERT INTO share_links(hash, user_id) VALUES(?, ?)", hash, userID); err != nil {
		// Lost a race with a concurrent enable; the winner's link stands.
		if isUniqueViolation(err) {
			if serr := s.db.QueryRow("SELECT hash FROM share_links WHERE user_id = ?", userID).Scan(&hash); serr == nil {
				return hash, nil
			}
		}
		return "", err
	}

	s.events.Record(userID, "share_enabled", "Enabled public sharing")
	return hash, nil
}

// Disable removes the user's share link, if any.
func (s *ShareService) Disable(userID string) error {
	if _, err := s.db.Exec("DELETE FROM share_links WHERE user_id = ?", userID); err != nil {
		return err
	}

	s.events.Record(userID, "share_disabled", "Disabled public sharing")
	return nil
}

// Resolve looks up a share hash and returns the owner's username together
// with their full content set. Unknown hashes fail with apperr.ErrNotFound,
// as does a link whose owner no longer exists.
func (s *ShareService) Resolve(hash string) (string, []models.Content, error) {
	var link models.ShareLink
	row := s.db.QueryRow("SELECT hash, user_id FROM share_links WHERE hash = ?", hash)
	if err := row.Scan(&link.Hash, &link.UserID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil, apperr.ErrNotFound
		}
		return "", nil, err
	}

	var username string
	row = s.db.QueryRow("SELECT username FROM users WHERE id = ?", link.UserID)
	if err := row.Scan(&username); err != nil {
		// The link outlived its owner; treat it as dead.
		if err == sql.ErrNoRows {
			return "", nil, apperr.ErrNotFound
		}
		return "", nil, err
	}

	content, err := s.content.ListOwned(link.UserID)
	if err != nil {
		return "", nil, err
	}

	return username, content, nil
}
