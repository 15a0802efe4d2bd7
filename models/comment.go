package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment 评论表结构
// parent_id = 0 表示一级评论，非 0 表示对一级评论的回复（只允许一层）
// deleted_at 软删除，删除后对所有读取不可见，但 ID 仍可被外键引用
type Comment struct {
	ID         uint64         `gorm:"column:id;primaryKey" json:"id"`
	PostID     uint64         `gorm:"column:post_id;not null;index:idx_post_parent" json:"post_id"`
	UserID     uint64         `gorm:"column:user_id;not null;index" json:"user_id"`
	ParentID   uint64         `gorm:"column:parent_id;not null;default:0;index:idx_post_parent" json:"parent_id"`
	Content    string         `gorm:"column:content;type:text;not null" json:"content"`
	ReplyCount int            `gorm:"column:reply_count;default:0" json:"reply_count"`
	CreatedAt  time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Comment) TableName() string { return "comments" }

// IsRoot 是否一级评论
func (c *Comment) IsRoot() bool { return c.ParentID == 0 }
