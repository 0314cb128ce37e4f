package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/backend/src/models"
)

func TestHomeFeedComposition(t *testing.T) {
	s := newTestService(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")
	c := createUser(t, s, "c")
	outsider := createUser(t, s, "outsider")

	_, err := s.ToggleFollow(a.ID, b.ID)
	require.NoError(t, err)
	_, err = s.ToggleFollow(a.ID, c.ID)
	require.NoError(t, err)

	base := time.Now().Add(-24 * time.Hour)
	own := createPostAt(t, s, a, "a's own post", base.Add(1*time.Minute))
	b1 := createPostAt(t, s, b, "b one", base.Add(2*time.Minute))
	b2 := createPostAt(t, s, b, "b two", base.Add(3*time.Minute))
	b3 := createPostAt(t, s, b, "b three", base.Add(4*time.Minute))
	createPostAt(t, s, outsider, "not in the feed", base.Add(5*time.Minute))

	// c reposts a's post; the repost is the newest entry
	_, err = s.ToggleRepost(c.ID, own.ID)
	require.NoError(t, err)

	feed, err := s.HomeFeed(a.ID)
	require.NoError(t, err)
	require.Len(t, feed, 5)

	// newest first
	assert.Equal(t, "c", feed[0].Author.Username)
	require.NotNil(t, feed[0].RepostOf)
	assert.Equal(t, "a", feed[0].RepostOf.Author.Username)
	assert.Equal(t, "a's own post", feed[0].RepostOf.Content)
	assert.Empty(t, feed[0].Content)

	assert.Equal(t, b3.ID, feed[1].ID)
	assert.Equal(t, b2.ID, feed[2].ID)
	assert.Equal(t, b1.ID, feed[3].ID)
	assert.Equal(t, own.ID, feed[4].ID)
}

func TestHomeFeedTimestampTieBreak(t *testing.T) {
	s := newTestService(t)
	a := createUser(t, s, "a")
	ts := time.Now().Add(-time.Hour)

	first := createPostAt(t, s, a, "first", ts)
	second := createPostAt(t, s, a, "second", ts)

	feed, err := s.HomeFeed(a.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// equal timestamps fall back to insertion order
	assert.Equal(t, first.ID, feed[0].ID)
	assert.Equal(t, second.ID, feed[1].ID)
}

func TestHomeFeedResolvesAssociations(t *testing.T) {
	s := newTestService(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")
	post := createPost(t, s, a, "hello")

	_, err := s.ToggleLike(b.ID, post.ID)
	require.NoError(t, err)
	_, err = s.AddComment(b.ID, post.ID, "first")
	require.NoError(t, err)
	_, err = s.AddComment(a.ID, post.ID, "second")
	require.NoError(t, err)

	feed, err := s.HomeFeed(a.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	entry := feed[0]
	assert.Equal(t, 1, entry.LikeCount)
	require.Len(t, entry.Likes, 1)
	assert.Equal(t, "b", entry.Likes[0].Username)

	require.Len(t, entry.Comments, 2)
	assert.Equal(t, "first", entry.Comments[0].Content)
	assert.Equal(t, "b", entry.Comments[0].Author.Username)
	assert.Equal(t, "second", entry.Comments[1].Content)
	assert.Equal(t, "a", entry.Comments[1].Author.Username)
}

func TestUserPosts(t *testing.T) {
	s := newTestService(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")
	createPost(t, s, a, "mine")
	createPost(t, s, b, "theirs")

	posts, err := s.UserPosts("a")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].Content)

	_, err = s.UserPosts("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

// orphaned reposts stay in the feed without attribution once the original is gone
func TestHomeFeedOrphanedRepost(t *testing.T) {
	s := newTestService(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")
	original := createPost(t, s, a, "soon gone")

	_, err := s.ToggleFollow(a.ID, b.ID)
	require.NoError(t, err)
	_, err = s.ToggleRepost(b.ID, original.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(a.ID, original.ID))

	feed, err := s.HomeFeed(a.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "b", feed[0].Author.Username)
	assert.Nil(t, feed[0].RepostOf)

	var repost models.Post
	require.NoError(t, s.db.Where("author_id = ?", b.ID).First(&repost).Error)
	assert.Nil(t, repost.RepostOfID)
}
