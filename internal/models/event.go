package models

import "time"

// Event is one entry in a user's activity log.
type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Type      string    `json:"type"` // e.g. "signup", "content_added"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
