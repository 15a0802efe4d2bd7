package models

import "time"

// UserFollow 关注边，唯一键 follower_id + followee_id，
// 行的存在即"已关注"
type UserFollow struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followee,priority:1" json:"follower_id"` // 关注人
	FolloweeID uint64    `gorm:"column:followee_id;not null;uniqueIndex:uk_follower_followee,priority:2" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string { return "user_follow" }
