package models

import "time"

// Content is a single saved item in a user's collection.
type Content struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"` // e.g. "article", "video", "tweet"
	// Tags is stored and serialized but no endpoint populates it yet.
	Tags   []string `json:"tags"`
	UserID string   `json:"userId"`
	// Username of the owner, filled in on reads for display.
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
