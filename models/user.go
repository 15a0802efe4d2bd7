package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	Nickname  string    `gorm:"column:nickname" json:"nickname"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

type UserStats struct {
	UserID         uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	FollowerCount  int64     `gorm:"column:follower_count;not null;default:0" json:"follower_count"`
	FollowingCount int64     `gorm:"column:following_count;not null;default:0" json:"following_count"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserStats) TableName() string { return "user_stats" }
