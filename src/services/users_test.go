package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	s := newTestService(t)
	alice := createUser(t, s, "alice")
	createUser(t, s, "bob")

	bio := "writing Go"
	updated, err := s.UpdateProfile(alice.ID, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "writing Go", updated.Bio)
	assert.Equal(t, "alice", updated.Username)

	taken := "bob"
	_, err = s.UpdateProfile(alice.ID, UpdateProfileInput{Username: &taken})
	require.ErrorIs(t, err, ErrValidation)

	empty := "  "
	_, err = s.UpdateProfile(alice.ID, UpdateProfileInput{Username: &empty})
	require.ErrorIs(t, err, ErrValidation)

	renamed := "alice2"
	updated, err = s.UpdateProfile(alice.ID, UpdateProfileInput{Username: &renamed})
	require.NoError(t, err)

	found, err := s.UserByUsername("alice2")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
}

func TestSearchUsers(t *testing.T) {
	s := newTestService(t)
	alice := createUser(t, s, "alice")
	createUser(t, s, "alicia")
	createUser(t, s, "bob")

	results, err := s.SearchUsers(alice.ID, "ali")
	require.NoError(t, err)
	require.Len(t, results, 1)
	// the actor never appears in their own search results
	assert.Equal(t, "alicia", results[0].Username)

	results, err = s.SearchUsers(alice.ID, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUserByUsernameNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.UserByUsername("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
