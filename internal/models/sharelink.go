package models

import "time"

// ShareLink maps a public hash to the user whose collection it exposes.
// The hash acts as a capability token: knowing it grants read access to
// the owner's entire content set. At most one link exists per user.
type ShareLink struct {
	Hash      string    `json:"hash"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
