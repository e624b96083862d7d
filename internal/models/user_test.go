package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_FollowRoundTrip(t *testing.T) {
	alice := &User{ID: uuid.New(), Name: "alice", FollowedUsers: []string{}}
	bob := &User{ID: uuid.New(), Name: "bob", FollowedUsers: []string{}}

	alice.AddFollowed(bob)

	assert.True(t, alice.Follows(bob.ID.String()))
	assert.Contains(t, bob.FollowingUsers, alice.ID.String())
	assert.Equal(t, int64(1), alice.FollowingCount)
	assert.Equal(t, int64(1), bob.FollowersCount)
	assert.Equal(t, int64(0), alice.FollowersCount)
	assert.Equal(t, int64(0), bob.FollowingCount)

	alice.RemoveFollowed(bob)

	assert.False(t, alice.Follows(bob.ID.String()))
	assert.NotContains(t, bob.FollowingUsers, alice.ID.String())
	assert.Equal(t, int64(0), alice.FollowingCount)
	assert.Equal(t, int64(0), bob.FollowersCount)
}

func TestUser_RemoveFollowed_ClampsCounters(t *testing.T) {
	alice := &User{ID: uuid.New(), Name: "alice"}
	bob := &User{ID: uuid.New(), Name: "bob"}

	// 集合与计数不一致时取消关注不得产生负数
	alice.RemoveFollowed(bob)

	assert.Equal(t, int64(0), alice.FollowingCount)
	assert.Equal(t, int64(0), bob.FollowersCount)
}
