package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaxPostContentLen    = 280
	MaxCommentContentLen = 140
)

type Post struct {
	gorm.Model
	AuthorID uint   `json:"author" gorm:"index"`
	Content  string `json:"content" gorm:"type:text"`
	Image    string `json:"image"`
	Video    string `json:"video"`
	// RepostOfID apunta siempre al post original, nunca a otro repost
	RepostOfID *uint     `json:"repost_of" gorm:"index"`
	Likes      []Like    `json:"likes" gorm:"foreignKey:PostID"`
	Comments   []Comment `json:"comments" gorm:"foreignKey:PostID"`
	Author     User      `json:"-" gorm:"foreignKey:AuthorID"`
	RepostOf   *Post     `json:"-" gorm:"foreignKey:RepostOfID"`
}

// IsRepost reports whether the post carries no content of its own and only
// points at another post.
func (p Post) IsRepost() bool {
	return p.RepostOfID != nil
}

type PostDto struct {
	ID        uint         `json:"_id"`
	Author    UserDto      `json:"author"`
	Content   string       `json:"content"`
	Image     string       `json:"image"`
	Video     string       `json:"video"`
	RepostOf  *PostDto     `json:"repostOf,omitempty"`
	Likes     []UserDto    `json:"likes"`
	LikeCount int          `json:"likeCount"`
	Comments  []CommentDto `json:"comments"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Comment struct {
	gorm.Model
	PostID   uint   `json:"post_id" gorm:"index"`
	AuthorID uint   `json:"author_id" gorm:"index"`
	Content  string `json:"content" gorm:"type:text"`
	Author   User   `json:"-" gorm:"foreignKey:AuthorID"`
}

type CommentDto struct {
	ID        uint      `json:"_id"`
	Content   string    `json:"content"`
	Author    UserDto   `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Like is a relation row; one per (post, user) pair at any time.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}
