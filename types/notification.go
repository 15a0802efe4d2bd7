package types

import (
	"fmt"

	"Crux/models"
)

// NotificationPayload 通知内容的类型化变体，每个通知类型一个结构体。
// 渲染文案和偏好分类都由变体自己决定，派发器不再拼接松散的 map。
type NotificationPayload interface {
	Type() string
	Category() string
	Render() string
}

type PostLikedPayload struct {
	ActorName string
	PostTitle string
}

func (p PostLikedPayload) Type() string     { return models.NotifyTypePostLiked }
func (p PostLikedPayload) Category() string { return models.CategoryPostLikes }
func (p PostLikedPayload) Render() string {
	return fmt.Sprintf("%s 赞了你的帖子《%s》", p.ActorName, p.PostTitle)
}

type PostCommentedPayload struct {
	ActorName string
	PostTitle string
	Excerpt   string
}

func (p PostCommentedPayload) Type() string     { return models.NotifyTypePostCommented }
func (p PostCommentedPayload) Category() string { return models.CategoryPostComments }
func (p PostCommentedPayload) Render() string {
	return fmt.Sprintf("%s 评论了你的帖子《%s》：%s", p.ActorName, p.PostTitle, p.Excerpt)
}

type CommentRepliedPayload struct {
	ActorName string
	Excerpt   string
}

func (p CommentRepliedPayload) Type() string     { return models.NotifyTypeCommentReplied }
func (p CommentRepliedPayload) Category() string { return models.CategoryCommentReplies }
func (p CommentRepliedPayload) Render() string {
	return fmt.Sprintf("%s 回复了你的评论：%s", p.ActorName, p.Excerpt)
}

type NewFollowerPayload struct {
	ActorName string
}

func (p NewFollowerPayload) Type() string     { return models.NotifyTypeNewFollower }
func (p NewFollowerPayload) Category() string { return models.CategoryFollows }
func (p NewFollowerPayload) Render() string {
	return fmt.Sprintf("%s 关注了你", p.ActorName)
}

// NewMessagePayload 私信通知，消息本体由外围 IM 服务投递，这里只派发通知
type NewMessagePayload struct {
	ActorName string
}

func (p NewMessagePayload) Type() string     { return models.NotifyTypeNewMessage }
func (p NewMessagePayload) Category() string { return models.CategoryMessages }
func (p NewMessagePayload) Render() string {
	return fmt.Sprintf("%s 给你发来一条新消息", p.ActorName)
}

// GearListInvitePayload 装备清单邀请
type GearListInvitePayload struct {
	ActorName string
	ListName  string
}

func (p GearListInvitePayload) Type() string     { return models.NotifyTypeGearListInvite }
func (p GearListInvitePayload) Category() string { return models.CategoryGearListInvites }
func (p GearListInvitePayload) Render() string {
	return fmt.Sprintf("%s 邀请你加入装备清单「%s」", p.ActorName, p.ListName)
}

// 通知列表响应
type NotificationItem struct {
	ID          uint64 `json:"id,string"`
	Type        string `json:"type"`
	RelatedID   uint64 `json:"related_id,string"`
	RelatedType string `json:"related_type"`
	Content     string `json:"content"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   int64  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationItem `json:"notifications"`
	NextCursor    string              `json:"next_cursor"`
	HasMore       bool                `json:"has_more"`
}

type MarkReadRequest struct {
	NotificationID uint64 `json:"notification_id,string" binding:"required"`
}
