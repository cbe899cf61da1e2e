package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/avscott/brainbox-be/internal/models"
)

// EventServiceProvider defines the interface for activity logging.
type EventServiceProvider interface {
	Record(userID, eventType, message string)
	GetRecent(userID string, limit int) ([]models.Event, error)
}

// EventService keeps a per-user activity log.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// Record appends an entry to the user's activity log. Activity is
// best-effort: failures are logged and never fail the calling operation.
func (s *EventService) Record(userID, eventType, message string) {
	event := models.Event{
		ID:      uuid.New().String(),
		UserID:  userID,
		Type:    eventType,
		Message: message,
	}

	stmt, err := s.db.Prepare("INSERT INTO events(id, user_id, type, message) VALUES(?, ?, ?, ?)")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to prepare activity insert")
		return
	}
	defer stmt.Close()

	if _, err = stmt.Exec(event.ID, event.UserID, event.Type, event.Message); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to record activity")
	}
}

// GetRecent retrieves the user's most recent activity, newest first.
func (s *EventService) GetRecent(userID string, limit int) ([]models.Event, error) {
	rows, err := s.db.Query("SELECT id, user_id, type, message, created_at FROM events WHERE user_id = ? ORDER BY created_at DESC, id LIMIT ?", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.UserID, &event.Type, &event.Message, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
