// Package services implements the social-graph interaction engine: the
// follow/like/repost toggles, comment creation, home-feed composition and the
// notification ledger. Every mutating operation runs its read-check-then-write
// and the notification insert it may trigger inside a single database
// transaction, so concurrent calls never leave partial effects behind.
package services

import (
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

type FollowResult struct {
	NowFollowing bool `json:"nowFollowing"`
}

type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type RepostResult struct {
	Reposted    bool `json:"reposted"`
	RepostCount int  `json:"repostCount"`
}
