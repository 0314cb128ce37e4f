package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chirpnet/backend/src/models"
	"gorm.io/gorm"
)

// ToggleLike flips the actor's like on a post and returns the like state
// together with the count read after the mutation. A like on someone else's
// post notifies the author; self-likes and unlikes never do.
func (s *Service) ToggleLike(actorID, postID uint) (LikeResult, error) {
	var res LikeResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %d", ErrNotFound, postID)
			}
			return storageErr(err)
		}

		var like models.Like
		err := tx.Where("post_id = ? AND user_id = ?", postID, actorID).First(&like).Error
		switch {
		case err == nil:
			// Ya existe el like, eliminarlo (unlike)
			if err := tx.Delete(&like).Error; err != nil {
				return storageErr(err)
			}
			res.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			newLike := models.Like{PostID: postID, UserID: actorID}
			if err := tx.Create(&newLike).Error; err != nil {
				return storageErr(err)
			}
			res.Liked = true
			if post.AuthorID != actorID {
				notification := models.Notification{
					RecipientID: post.AuthorID,
					ActorID:     actorID,
					Kind:        models.NotificationKindLike,
					PostID:      &post.ID,
				}
				if err := tx.Create(&notification).Error; err != nil {
					return storageErr(err)
				}
			}
		default:
			return storageErr(err)
		}

		var count int64
		if err := tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return storageErr(err)
		}
		res.LikeCount = int(count)
		return nil
	})

	return res, err
}

// AddComment creates a comment on a post, notifying the post author unless
// the actor is commenting on their own post.
func (s *Service) AddComment(actorID, postID uint, content string) (models.CommentDto, error) {
	var dto models.CommentDto

	content = strings.TrimSpace(content)
	if content == "" {
		return dto, fmt.Errorf("%w: comment content cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(content) > models.MaxCommentContentLen {
		return dto, fmt.Errorf("%w: comment content exceeds %d characters", ErrValidation, models.MaxCommentContentLen)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %d", ErrNotFound, postID)
			}
			return storageErr(err)
		}

		comment := models.Comment{PostID: postID, AuthorID: actorID, Content: content}
		if err := tx.Create(&comment).Error; err != nil {
			return storageErr(err)
		}

		if post.AuthorID != actorID {
			notification := models.Notification{
				RecipientID: post.AuthorID,
				ActorID:     actorID,
				Kind:        models.NotificationKindComment,
				PostID:      &post.ID,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return storageErr(err)
			}
		}

		var author models.User
		if err := tx.First(&author, actorID).Error; err != nil {
			return storageErr(err)
		}

		dto = models.CommentDto{
			ID:        comment.ID,
			Content:   comment.Content,
			Author:    author.ToDto(),
			CreatedAt: comment.CreatedAt,
		}
		return nil
	})

	return dto, err
}

// ToggleRepost flips the actor's repost of a post. The operation always
// resolves to the canonical original first, so repost chains never grow past
// length one, and at most one repost row exists per (actor, source) pair.
func (s *Service) ToggleRepost(actorID, postID uint) (RepostResult, error) {
	var res RepostResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var target models.Post
		if err := tx.First(&target, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %d", ErrNotFound, postID)
			}
			return storageErr(err)
		}

		// Repostear un repost siempre apunta al post original
		source := target
		if target.RepostOfID != nil {
			var original models.Post
			if err := tx.First(&original, *target.RepostOfID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: post %d", ErrNotFound, *target.RepostOfID)
				}
				return storageErr(err)
			}
			source = original
		}

		var existing models.Post
		err := tx.Where("author_id = ? AND repost_of_id = ?", actorID, source.ID).First(&existing).Error
		switch {
		case err == nil:
			// hard delete so the same pair can repost again later
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return storageErr(err)
			}
			res.Reposted = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			sourceID := source.ID
			repost := models.Post{AuthorID: actorID, RepostOfID: &sourceID}
			if err := tx.Create(&repost).Error; err != nil {
				return storageErr(err)
			}
			res.Reposted = true
			if source.AuthorID != actorID {
				notification := models.Notification{
					RecipientID: source.AuthorID,
					ActorID:     actorID,
					Kind:        models.NotificationKindRepost,
					PostID:      &repost.ID,
				}
				if err := tx.Create(&notification).Error; err != nil {
					return storageErr(err)
				}
			}
		default:
			return storageErr(err)
		}

		var count int64
		if err := tx.Model(&models.Post{}).Where("repost_of_id = ?", source.ID).Count(&count).Error; err != nil {
			return storageErr(err)
		}
		res.RepostCount = int(count)
		return nil
	})

	return res, err
}
