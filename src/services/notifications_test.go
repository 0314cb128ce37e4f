package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/backend/src/models"
)

func TestListNotificationsMarksRead(t *testing.T) {
	s := newTestService(t)
	x := createUser(t, s, "x")
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	post := createPost(t, s, x, "popular post")

	_, err := s.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	_, err = s.AddComment(bob.ID, post.ID, "comment")
	require.NoError(t, err)
	_, err = s.ToggleFollow(alice.ID, x.ID)
	require.NoError(t, err)

	unread, err := s.UnreadCount(x.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	listed, err := s.ListNotifications(x.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, n := range listed {
		// the dto reflects the state at the moment the list was opened
		assert.False(t, n.IsRead)
	}

	unread, err = s.UnreadCount(x.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	// a notification created after the listing stays unread
	_, err = s.ToggleRepost(bob.ID, post.ID)
	require.NoError(t, err)

	unread, err = s.UnreadCount(x.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	listed, err = s.ListNotifications(x.ID)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, models.NotificationKindRepost, listed[0].Kind)
	assert.False(t, listed[0].IsRead)
	assert.True(t, listed[1].IsRead)
}

func TestUnreadCountDoesNotMutate(t *testing.T) {
	s := newTestService(t)
	x := createUser(t, s, "x")
	alice := createUser(t, s, "alice")
	post := createPost(t, s, x, "post")

	_, err := s.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		unread, err := s.UnreadCount(x.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, unread)
	}
}

func TestNotificationsNewestFirst(t *testing.T) {
	s := newTestService(t)
	x := createUser(t, s, "x")
	alice := createUser(t, s, "alice")
	post := createPost(t, s, x, "post")

	_, err := s.ToggleFollow(alice.ID, x.ID)
	require.NoError(t, err)
	_, err = s.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	_, err = s.AddComment(alice.ID, post.ID, "latest")
	require.NoError(t, err)

	listed, err := s.ListNotifications(x.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, models.NotificationKindComment, listed[0].Kind)
	assert.Equal(t, models.NotificationKindLike, listed[1].Kind)
	assert.Equal(t, models.NotificationKindFollow, listed[2].Kind)
	assert.Equal(t, "alice", listed[0].Actor.Username)
	require.NotNil(t, listed[0].Post)
	assert.Equal(t, "post", listed[0].Post.Content)
}
