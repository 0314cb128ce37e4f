package services

import (
	"github.com/chirpnet/backend/src/models"
	"gorm.io/gorm"
)

// HomeFeed assembles the actor's timeline: their own posts plus posts by every
// user they follow, newest first. Associations are batch-fetched with Preload,
// one query per relation instead of one per post.
func (s *Service) HomeFeed(actorID uint) ([]models.PostDto, error) {
	var followeeIDs []uint
	err := s.db.Model(&models.Follow{}).
		Where("follower_id = ?", actorID).
		Pluck("followee_id", &followeeIDs).Error
	if err != nil {
		return nil, storageErr(err)
	}

	// El IN deduplica: el propio actor cuenta una sola vez aunque se siga a sí mismo
	authorIDs := append(followeeIDs, actorID)

	var posts []models.Post
	err = s.feedQuery().
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return toPostDtos(posts), nil
}

// UserPosts returns the named user's posts, newest first, for profile pages.
func (s *Service) UserPosts(username string) ([]models.PostDto, error) {
	user, err := s.UserByUsername(username)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	err = s.feedQuery().
		Where("author_id = ?", user.ID).
		Order("created_at DESC, id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return toPostDtos(posts), nil
}

func (s *Service) feedQuery() *gorm.DB {
	return s.db.
		Preload("Author").
		Preload("Likes.User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.Author").
		Preload("RepostOf.Author")
}

func toPostDtos(posts []models.Post) []models.PostDto {
	dtos := make([]models.PostDto, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, toPostDto(post))
	}
	return dtos
}

// toPostDto resolves a post for rendering. A repost carries attribution to
// both the reposting actor (Author) and the original author (RepostOf.Author).
func toPostDto(post models.Post) models.PostDto {
	dto := models.PostDto{
		ID:        post.ID,
		Author:    post.Author.ToDto(),
		Content:   post.Content,
		Image:     post.Image,
		Video:     post.Video,
		CreatedAt: post.CreatedAt,
	}

	for _, like := range post.Likes {
		dto.Likes = append(dto.Likes, like.User.ToDto())
	}
	dto.LikeCount = len(post.Likes)

	for _, comment := range post.Comments {
		dto.Comments = append(dto.Comments, models.CommentDto{
			ID:        comment.ID,
			Content:   comment.Content,
			Author:    comment.Author.ToDto(),
			CreatedAt: comment.CreatedAt,
		})
	}

	if post.IsRepost() && post.RepostOf != nil {
		original := models.PostDto{
			ID:        post.RepostOf.ID,
			Author:    post.RepostOf.Author.ToDto(),
			Content:   post.RepostOf.Content,
			Image:     post.RepostOf.Image,
			Video:     post.RepostOf.Video,
			CreatedAt: post.RepostOf.CreatedAt,
		}
		dto.RepostOf = &original
	}

	return dto
}
