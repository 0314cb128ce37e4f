package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chirpnet/backend/src/models"
	"gorm.io/gorm"
)

type CreatePostInput struct {
	Content string
	Image   string
	Video   string
}

// CreatePost creates a post authored by the actor. Content may be empty only
// when an image or video reference is attached.
func (s *Service) CreatePost(actorID uint, in CreatePostInput) (models.PostDto, error) {
	var dto models.PostDto

	content := strings.TrimSpace(in.Content)
	if content == "" && in.Image == "" && in.Video == "" {
		return dto, fmt.Errorf("%w: post needs content or an attachment", ErrValidation)
	}
	if utf8.RuneCountInString(content) > models.MaxPostContentLen {
		return dto, fmt.Errorf("%w: post content exceeds %d characters", ErrValidation, models.MaxPostContentLen)
	}

	post := models.Post{
		AuthorID: actorID,
		Content:  content,
		Image:    in.Image,
		Video:    in.Video,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return dto, storageErr(err)
	}

	// Recargar con el autor para la respuesta
	if err := s.db.Preload("Author").First(&post, post.ID).Error; err != nil {
		return dto, storageErr(err)
	}

	return toPostDto(post), nil
}

// GetPost returns a single post with its associations resolved.
func (s *Service) GetPost(postID uint) (models.PostDto, error) {
	var post models.Post
	err := s.feedQuery().First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PostDto{}, fmt.Errorf("%w: post %d", ErrNotFound, postID)
		}
		return models.PostDto{}, storageErr(err)
	}
	return toPostDto(post), nil
}

// DeletePost deletes a post owned by the actor. Comments, likes and
// post-scoped notifications go with it; reposts of the deleted post survive
// with their pointer cleared, never cascaded.
func (s *Service) DeletePost(actorID, postID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %d", ErrNotFound, postID)
			}
			return storageErr(err)
		}

		if post.AuthorID != actorID {
			return fmt.Errorf("%w: only the author can delete a post", ErrForbidden)
		}

		if err := tx.Model(&models.Post{}).Where("repost_of_id = ?", post.ID).
			Update("repost_of_id", nil).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Notification{}).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Delete(&post).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
}
