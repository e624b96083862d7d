package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPost_ToggleLike(t *testing.T) {
	post := &Post{ID: uuid.New(), LikedBy: []string{}}
	userID := uuid.New().String()

	liked := post.ToggleLike(userID)
	assert.True(t, liked)
	assert.True(t, post.Liked(userID))

	liked = post.ToggleLike(userID)
	assert.False(t, liked)
	assert.False(t, post.Liked(userID))
	assert.Empty(t, post.LikedBy)
}

func TestSnapshotOf(t *testing.T) {
	post := &Post{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Username:    "alice",
		UserProfile: "alice.png",
		Title:       "leg day",
		Description: "squats",
		Images:      []string{"a.jpg"},
	}

	snap := SnapshotOf(post)
	assert.Equal(t, "leg day", snap.Title)
	assert.Equal(t, "alice", snap.AuthorName)
	assert.Equal(t, pq.StringArray{"a.jpg"}, snap.Images)
}
