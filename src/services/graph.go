package services

import (
	"errors"
	"fmt"

	"github.com/chirpnet/backend/src/models"
	"gorm.io/gorm"
)

// ToggleFollow flips the follow edge from actor to target. Establishing the
// edge notifies the target; removing it is silent.
func (s *Service) ToggleFollow(actorID, targetID uint) (FollowResult, error) {
	var res FollowResult

	if actorID == targetID {
		return res, fmt.Errorf("%w: users cannot follow themselves", ErrInvalidOperation)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, targetID)
			}
			return storageErr(err)
		}

		var edge models.Follow
		err := tx.Where("follower_id = ? AND followee_id = ?", actorID, targetID).First(&edge).Error
		switch {
		case err == nil:
			// Unfollow: quitar la relación, sin notificación
			if err := tx.Delete(&edge).Error; err != nil {
				return storageErr(err)
			}
			res.NowFollowing = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			newEdge := models.Follow{FollowerID: actorID, FolloweeID: targetID}
			if err := tx.Create(&newEdge).Error; err != nil {
				return storageErr(err)
			}
			notification := models.Notification{
				RecipientID: targetID,
				ActorID:     actorID,
				Kind:        models.NotificationKindFollow,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return storageErr(err)
			}
			res.NowFollowing = true
			return nil
		default:
			return storageErr(err)
		}
	})

	return res, err
}

// Followers returns the users following the named user.
func (s *Service) Followers(username string) ([]models.UserDto, error) {
	user, err := s.UserByUsername(username)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = s.db.
		Select("users.*").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", user.ID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return toUserDtos(users), nil
}

// Following returns the users the named user follows.
func (s *Service) Following(username string) ([]models.UserDto, error) {
	user, err := s.UserByUsername(username)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = s.db.
		Select("users.*").
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", user.ID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return toUserDtos(users), nil
}

func toUserDtos(users []models.User) []models.UserDto {
	dtos := make([]models.UserDto, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, u.ToDto())
	}
	return dtos
}
