package types

import "time"

const DefaultPageSize = 20

// 创建评论请求
type CreateCommentRequest struct {
	PostID   uint64 `json:"post_id,string" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ParentID uint64 `json:"parent_id,string"` // 回复一级评论时带上
}

// 编辑评论请求
type EditCommentRequest struct {
	CommentID uint64 `json:"comment_id,string" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// 删除评论请求
type DeleteCommentRequest struct {
	CommentID uint64 `json:"comment_id,string" binding:"required"`
}

// 评论响应(一级评论)
type CommentResponse struct {
	ID         uint64    `json:"id,string"`
	PostID     uint64    `json:"post_id,string"`
	UserID     uint64    `json:"user_id,string"`
	ParentID   uint64    `json:"parent_id,string"`
	Content    string    `json:"content"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 最早的几条回复，剩余的走 replies 接口
	Replies []*CommentResponse `json:"replies,omitempty"`
}

type CommentsListResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	NextCursor string             `json:"next_cursor"` // 不透明游标，原样带回
	HasMore    bool               `json:"has_more"`
}

type RepliesListResponse struct {
	Replies []*CommentResponse `json:"replies"`
	HasMore bool               `json:"has_more"`
}
