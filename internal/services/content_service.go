package services

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/avscott/brainbox-be/internal/apperr"
	"github.com/avscott/brainbox-be/internal/models"
)

// ContentServiceProvider defines the interface for content operations.
type ContentServiceProvider interface {
	Create(userID, title, link, contentType string) (models.Content, error)
	ListOwned(userID string) ([]models.Content, error)
	Delete(userID, contentID string) error
}

// ContentService provides business logic for a user's saved content.
type ContentService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB, events EventServiceProvider) *ContentService {
	return &ContentService{db: db, events: events}
}

// Create stores a new content item owned by the given user, with empty
// tags.
func (s *ContentService) Create(userID, title, link, contentType string) (models.Content, error) {
	content := models.Content{
		ID:     uuid.New().String(),
		Title:  title,
		Link:   link,
		Type:   contentType,
		Tags:   []string{},
		UserID: userID,
	}

	tagsJSON, err := json.Marshal(content.Tags)
	if err != nil {
		return models.Content{}, err
	}

	stmt, err := s.db.Prepare("INSERT INTO content(id, title, link, type, tags_json, user_id) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Content{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(content.ID, content.Title, content.Link, content.Type, string(tagsJSON), content.UserID); err != nil {
		return models.Content{}, err
	}

	s.events.Record(userID, "content_added", "Added "+title)
	return content, nil
}

// ListOwned returns all content owned by the user, each item annotated
// with the owner's username for display.
func (s *ContentService) ListOwned(userID string) ([]models.Content, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.title, c.link, c.type, c.tags_json, c.user_id, u.username, c.created_at
		FROM content c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = ?
		ORDER BY c.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty collection serializes as [], not null.
	content := []models.Content{}
	for rows.Next() {
		var item models.Content
		var tagsJSON string
		if err := rows.Scan(&item.ID, &item.Title, &item.Link, &item.Type, &tagsJSON, &item.UserID, &item.Username, &item.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tagsJSON), &item.Tags); err != nil {
			return nil, err
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		content = append(content, item)
	}
	return content, rows.Err()
}

// Delete removes a content item, but only if it exists and belongs to the
// user. A missing id and an ownership mismatch are indistinguishable to
// the caller, so owners cannot be probed for each other's items.
func (s *ContentService) Delete(userID, contentID string) error {
	res, err := s.db.Exec("DELETE FROM content WHERE id = ? AND user_id = ?", contentID, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}

	s.events.Record(userID, "content_deleted", "Deleted a content item")
	return nil
}
