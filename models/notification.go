package models

import "time"

// 通知类型，与 types.NotificationPayload 的变体一一对应
const (
	NotifyTypePostLiked      = "post_liked"
	NotifyTypePostCommented  = "post_commented"
	NotifyTypeCommentReplied = "comment_replied"
	NotifyTypeNewFollower    = "new_follower"
	NotifyTypeNewMessage     = "new_message"
	NotifyTypeGearListInvite = "gear_list_invite"
)

// 通知偏好分类
const (
	CategoryMessages        = "messages"
	CategoryPostLikes       = "post_likes"
	CategoryPostComments    = "post_comments"
	CategoryCommentReplies  = "comment_replies"
	CategoryGearListInvites = "gear_list_invites"
	CategoryFollows         = "follows"
)

// Notification 通知表
// content 是落库时渲染好的展示文案，客户端直接显示
type Notification struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_user_read" json:"user_id"`
	ActorID     uint64    `gorm:"column:actor_id;not null" json:"actor_id"`
	Type        string    `gorm:"column:type;size:32;not null" json:"type"`
	RelatedID   uint64    `gorm:"column:related_id;not null" json:"related_id"`
	RelatedType string    `gorm:"column:related_type;size:32;not null" json:"related_type"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	IsRead      bool      `gorm:"column:is_read;not null;default:0;index:idx_user_read" json:"is_read"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationPreference 每个用户一行，按分类开关
// 没有这行记录时所有分类默认开启
type NotificationPreference struct {
	UserID          uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Messages        bool      `gorm:"column:messages;not null;default:1" json:"messages"`
	PostLikes       bool      `gorm:"column:post_likes;not null;default:1" json:"post_likes"`
	PostComments    bool      `gorm:"column:post_comments;not null;default:1" json:"post_comments"`
	CommentReplies  bool      `gorm:"column:comment_replies;not null;default:1" json:"comment_replies"`
	GearListInvites bool      `gorm:"column:gear_list_invites;not null;default:1" json:"gear_list_invites"`
	Follows         bool      `gorm:"column:follows;not null;default:1" json:"follows"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (NotificationPreference) TableName() string { return "notification_preferences" }

// Allows 分类是否允许，nil 表示没有偏好行，默认全部允许
func (p *NotificationPreference) Allows(category string) bool {
	if p == nil {
		return true
	}
	switch category {
	case CategoryMessages:
		return p.Messages
	case CategoryPostLikes:
		return p.PostLikes
	case CategoryPostComments:
		return p.PostComments
	case CategoryCommentReplies:
		return p.CommentReplies
	case CategoryGearListInvites:
		return p.GearListInvites
	case CategoryFollows:
		return p.Follows
	}
	return true
}
