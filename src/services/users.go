package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chirpnet/backend/src/models"
	"gorm.io/gorm"
)

const maxBioLen = 500

// UserByUsername looks a user up by their unique handle.
func (s *Service) UserByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return user, storageErr(err)
	}
	return user, nil
}

type UpdateProfileInput struct {
	Username       *string
	Bio            *string
	ProfilePicture *string
	CoverPicture   *string
}

// UpdateProfile applies the provided fields to the actor's own profile.
func (s *Service) UpdateProfile(actorID uint, in UpdateProfileInput) (models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, actorID)
			}
			return storageErr(err)
		}

		updates := map[string]interface{}{}
		if in.Username != nil {
			username := strings.TrimSpace(*in.Username)
			if username == "" {
				return fmt.Errorf("%w: username cannot be empty", ErrValidation)
			}
			var existing models.User
			err := tx.Where("username = ? AND id <> ?", username, actorID).First(&existing).Error
			if err == nil {
				return fmt.Errorf("%w: username %q is taken", ErrValidation, username)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return storageErr(err)
			}
			updates["username"] = username
		}
		if in.Bio != nil {
			if utf8.RuneCountInString(*in.Bio) > maxBioLen {
				return fmt.Errorf("%w: bio exceeds %d characters", ErrValidation, maxBioLen)
			}
			updates["bio"] = *in.Bio
		}
		if in.ProfilePicture != nil {
			updates["profile_picture"] = *in.ProfilePicture
		}
		if in.CoverPicture != nil {
			updates["cover_picture"] = *in.CoverPicture
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})

	return user, err
}

// SearchUsers finds users whose handle contains the query, excluding the
// actor themselves.
func (s *Service) SearchUsers(actorID uint, query string) ([]models.UserDto, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.UserDto{}, nil
	}

	var users []models.User
	err := s.db.
		Where("username LIKE ? AND id <> ?", "%"+query+"%", actorID).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, storageErr(err)
	}

	return toUserDtos(users), nil
}
