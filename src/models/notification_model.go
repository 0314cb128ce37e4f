package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is an append-only ledger row: nothing mutates it after insert
// except the IsRead flag.
type Notification struct {
	gorm.Model
	RecipientID uint             `json:"recipient" gorm:"index"`
	ActorID     uint             `json:"actor" gorm:"index"`
	Kind        NotificationKind `json:"kind" gorm:"size:20"`
	PostID      *uint            `json:"post,omitempty"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`

	Actor User  `json:"-" gorm:"foreignKey:ActorID"`
	Post  *Post `json:"-" gorm:"foreignKey:PostID"`
}

type NotificationKind string

const (
	NotificationKindLike    NotificationKind = "like"
	NotificationKindComment NotificationKind = "comment"
	NotificationKindFollow  NotificationKind = "follow"
	NotificationKindRepost  NotificationKind = "repost"
)

type NotificationDto struct {
	ID        uint             `json:"_id"`
	Kind      NotificationKind `json:"kind"`
	Actor     UserDto          `json:"actor"`
	Post      *PostDto         `json:"post,omitempty"`
	IsRead    bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
