package models

import "time"

// Post 帖子（攀爬记录/游记）。内容的增删改由外围 CRUD 服务负责，
// 这里只保留互动引擎需要的字段：存在性校验和归属判断。
type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title" json:"title"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Post) TableName() string { return "posts" }

// PostStats 帖子统计
// 对应表 post_stats，计数只在点赞/评论事务内变更
type PostStats struct {
	PostID       uint64    `gorm:"column:post_id;primaryKey" json:"post_id"`
	LikeCount    int64     `gorm:"column:like_count;default:0" json:"like_count"`
	CommentCount int64     `gorm:"column:comment_count;default:0" json:"comment_count"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PostStats) TableName() string { return "post_stats" }
