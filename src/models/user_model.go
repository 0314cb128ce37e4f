package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `json:"username" gorm:"uniqueIndex"`
	Email          string `json:"email" gorm:"uniqueIndex"`
	Password       string `json:"-"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
	CoverPicture   string `json:"cover_picture"`
}

// MarshalJSON personaliza la serialización para cambiar ID a _id
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User
	return json.Marshal(&struct {
		ID uint `json:"_id"`
		*Alias
	}{
		ID:    u.ID,
		Alias: (*Alias)(&u),
	})
}

type UserDto struct {
	ID             uint   `json:"_id"`
	Username       string `json:"username"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profilePicture"`
}

func (u User) ToDto() UserDto {
	return UserDto{
		ID:             u.ID,
		Username:       u.Username,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
	}
}

// Follow is one asymmetric edge of the social graph: FollowerID follows
// FolloweeID. The composite unique index keeps at most one edge per pair.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	FolloweeID uint      `json:"followee_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `json:"-" gorm:"foreignKey:FollowerID"`
	Followee User `json:"-" gorm:"foreignKey:FolloweeID"`
}
