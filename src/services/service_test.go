package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chirpnet/backend/src/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection so every session sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return New(db)
}

func createUser(t *testing.T, s *Service, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
	}
	require.NoError(t, s.db.Create(&user).Error)
	return user
}

func createPost(t *testing.T, s *Service, author models.User, content string) models.Post {
	t.Helper()
	post := models.Post{AuthorID: author.ID, Content: content}
	require.NoError(t, s.db.Create(&post).Error)
	return post
}

func createPostAt(t *testing.T, s *Service, author models.User, content string, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{AuthorID: author.ID, Content: content}
	post.CreatedAt = createdAt
	require.NoError(t, s.db.Create(&post).Error)
	return post
}

func notificationCount(t *testing.T, s *Service, recipientID uint, kind models.NotificationKind) int64 {
	t.Helper()
	var count int64
	require.NoError(t, s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND kind = ?", recipientID, kind).
		Count(&count).Error)
	return count
}

func followEdgeCount(t *testing.T, s *Service, followerID, followeeID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error)
	return count
}
