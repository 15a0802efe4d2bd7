package types

import "fmt"

// 实时事件名，客户端按这个词表分发
const (
	EventPostLike       = "post:like"
	EventUserFollow     = "user:follow"
	EventCommentNew     = "comment:new"
	EventCommentEdited  = "comment:edited"
	EventCommentDeleted = "comment:deleted"
	EventNotifyNew      = "notification:new"
)

// Topic 前缀，{kind}:{id}
const (
	TopicKindPost         = "post"
	TopicKindUser         = "user"
	TopicKindConversation = "conversation"
	TopicKindGroup        = "group"
)

func PostTopic(postID uint64) string { return fmt.Sprintf("post:%d", postID) }

func UserTopic(userID uint64) string { return fmt.Sprintf("user:%d", userID) }

func ConversationTopic(id uint64) string { return fmt.Sprintf("conversation:%d", id) }

func GroupTopic(id uint64) string { return fmt.Sprintf("group:%d", id) }

// PostLikeEvent 点赞广播，带的是绝对计数，客户端丢消息后也能对齐
type PostLikeEvent struct {
	PostID    uint64 `json:"post_id,string"`
	LikeCount int64  `json:"like_count"`
}

// UserFollowEvent 关注广播
type UserFollowEvent struct {
	UserID        uint64 `json:"user_id,string"`
	FollowerCount int64  `json:"follower_count"`
}

// CommentDeletedEvent 删除只广播 ID
type CommentDeletedEvent struct {
	CommentID uint64 `json:"comment_id,string"`
	PostID    uint64 `json:"post_id,string"`
}

// NotifyNewEvent 通知推送，展平的展示字段
type NotifyNewEvent struct {
	ID          uint64 `json:"id,string"`
	Type        string `json:"type"`
	RelatedID   uint64 `json:"related_id,string"`
	RelatedType string `json:"related_type"`
	Content     string `json:"content"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   int64  `json:"created_at"`
}
