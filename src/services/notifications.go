package services

import (
	"github.com/chirpnet/backend/src/models"
	"gorm.io/gorm"
)

// ListNotifications returns the actor's notifications, newest first, and marks
// every currently-unread one as read. Listing and marking happen in one
// transaction: a notification created after the listing stays unread.
func (s *Service) ListNotifications(actorID uint) ([]models.NotificationDto, error) {
	var dtos []models.NotificationDto

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var notifications []models.Notification
		err := tx.
			Preload("Actor").
			Preload("Post.Author").
			Where("recipient_id = ?", actorID).
			Order("created_at DESC, id DESC").
			Find(&notifications).Error
		if err != nil {
			return storageErr(err)
		}

		err = tx.Model(&models.Notification{}).
			Where("recipient_id = ? AND is_read = ?", actorID, false).
			Update("is_read", true).Error
		if err != nil {
			return storageErr(err)
		}

		dtos = make([]models.NotificationDto, 0, len(notifications))
		for _, n := range notifications {
			// IsRead refleja el estado al momento de abrir la lista
			dto := models.NotificationDto{
				ID:        n.ID,
				Kind:      n.Kind,
				Actor:     n.Actor.ToDto(),
				IsRead:    n.IsRead,
				CreatedAt: n.CreatedAt,
			}
			if n.Post != nil {
				post := toPostDto(*n.Post)
				dto.Post = &post
			}
			dtos = append(dtos, dto)
		}
		return nil
	})

	return dtos, err
}

// UnreadCount is a side-effect-free projection for the badge counter.
func (s *Service) UnreadCount(actorID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", actorID, false).
		Count(&count).Error
	if err != nil {
		return 0, storageErr(err)
	}
	return count, nil
}
