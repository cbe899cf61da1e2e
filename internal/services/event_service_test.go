package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRecordAndGetRecent(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db)
	users := NewUserService(db, events)

	owner := registerTestUser(t, users, "a@b.com")
	other := registerTestUser(t, users, "b@b.com")

	events.Record(owner.ID, "content_added", "Added something")
	events.Record(other.ID, "share_enabled", "Enabled public sharing")

	got, err := events.GetRecent(owner.ID, 20)
	require.NoError(t, err)
	// Registration itself logged a signup event
	require.Len(t, got, 2)
	for _, event := range got {
		assert.Equal(t, owner.ID, event.UserID)
	}
	types := []string{got[0].Type, got[1].Type}
	assert.Contains(t, types, "signup")
	assert.Contains(t, types, "content_added")
}

func TestEventGetRecentHonorsLimit(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db)
	users := NewUserService(db, events)

	owner := registerTestUser(t, users, "a@b.com")
	for i := 0; i < 5; i++ {
		events.Record(owner.ID, "content_added", "Added something")
	}

	got, err := events.GetRecent(owner.ID, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
