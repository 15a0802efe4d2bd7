package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"Crux/dao"
	"Crux/models"
	"Crux/pkg/cursor"
	"Crux/pkg/log"
	"Crux/pkg/response"
	"Crux/pkg/snowflake"
	"Crux/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxCommentLen   = 500 // 评论长度上限（按字符数）
	previewReplies  = 3   // 列表里每条一级评论附带的回复条数
	excerptLen      = 50  // 通知文案里的摘要长度
	maxCommentsPage = 100
)

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	EditComment(ctx context.Context, userID, commentID uint64, content string) (*types.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetComments(ctx context.Context, postID uint64, cursorStr string, limit int) (*types.CommentsListResponse, error)
	GetReplies(ctx context.Context, commentID uint64, offset, limit int) (*types.RepliesListResponse, error)
}

type CommentsService struct {
	CommentDAO *dao.Comment
	PostDAO    *dao.PostDAO
	StatsDAO   *dao.PostStatsDAO
	UserDAO    *dao.Users
	Notify     INotifyService
	Bus        Bus
}

// CreateComment 发评论。parent_id 非 0 时是对一级评论的回复，只允许一层：
// 父评论必须是同一帖子下存活的一级评论
func (s *CommentsService) CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	post, err := s.PostDAO.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.ErrNotFound("帖子不存在")
	}

	var parent *models.Comment
	if req.ParentID != 0 {
		parent, err = s.CommentDAO.GetByID(ctx, req.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrInvalidReference("父评论不存在或已删除")
		}
		if err != nil {
			return nil, err
		}
		if !parent.IsRoot() {
			return nil, response.ErrInvalidReference("只能回复一级评论")
		}
		if parent.PostID != req.PostID {
			return nil, response.ErrInvalidReference("父评论不属于该帖子")
		}
	}

	comment := &models.Comment{
		ID:       uint64(snowflake.GenID()),
		PostID:   req.PostID,
		UserID:   userID,
		ParentID: req.ParentID,
		Content:  content,
	}

	err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if err := s.StatsDAO.IncrCommentCount(tx, req.PostID, 1); err != nil {
			return err
		}
		if parent != nil {
			return s.CommentDAO.IncrReplyCount(tx, parent.ID, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCommentNotify(ctx, userID, post, parent, comment)

	resp := toCommentResponse(comment)
	s.Bus.Publish(types.PostTopic(req.PostID), types.EventCommentNew, resp)

	return resp, nil
}

// 评论通知：回复通知父评论作者，一级评论通知帖子作者
func (s *CommentsService) dispatchCommentNotify(ctx context.Context, userID uint64, post *models.Post, parent *models.Comment, comment *models.Comment) {
	actorName := s.UserDAO.Nickname(ctx, userID)

	var recipientID uint64
	var payload types.NotificationPayload
	if parent != nil {
		recipientID = parent.UserID
		payload = types.CommentRepliedPayload{ActorName: actorName, Excerpt: excerpt(comment.Content)}
	} else {
		recipientID = post.UserID
		payload = types.PostCommentedPayload{ActorName: actorName, PostTitle: post.Title, Excerpt: excerpt(comment.Content)}
	}

	if err := s.Notify.Dispatch(ctx, recipientID, userID, payload, comment.ID, "comment"); err != nil {
		log.L.Warn("dispatch comment notification error", zap.Uint64("comment_id", comment.ID), zap.Error(err))
	}
}

func (s *CommentsService) EditComment(ctx context.Context, userID, commentID uint64, content string) (*types.CommentResponse, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrNotFound("评论不存在")
	}
	if err != nil {
		return nil, err
	}
	if err := authorizeCommentOwner(comment, userID); err != nil {
		return nil, err
	}

	if err := s.CommentDAO.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	applyEdit(comment, content)

	resp := toCommentResponse(comment)
	s.Bus.Publish(types.PostTopic(comment.PostID), types.EventCommentEdited, resp)

	return resp, nil
}

// DeleteComment 删除评论。一级评论级联软删除其回复，
// 帖子评论数按事务内的存活回复快照一次扣减
func (s *CommentsService) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.ErrNotFound("评论不存在")
	}
	if err != nil {
		return err
	}

	if err := authorizeCommentOwner(comment, userID); err != nil {
		return err
	}

	err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		removed := int64(1)
		if comment.IsRoot() {
			live, err := s.CommentDAO.CountLiveReplies(tx, commentID)
			if err != nil {
				return err
			}
			if err := s.CommentDAO.SoftDeleteReplies(tx, commentID); err != nil {
				return err
			}
			removed += live
		}
		if err := s.CommentDAO.SoftDelete(tx, commentID); err != nil {
			return err
		}
		if !comment.IsRoot() {
			if err := s.CommentDAO.IncrReplyCount(tx, comment.ParentID, -1); err != nil {
				return err
			}
		}
		return s.StatsDAO.IncrCommentCount(tx, comment.PostID, -removed)
	})
	if err != nil {
		return err
	}

	s.Bus.Publish(types.PostTopic(comment.PostID), types.EventCommentDeleted, &types.CommentDeletedEvent{
		CommentID: commentID,
		PostID:    comment.PostID,
	})

	return nil
}

// GetComments 游标翻页取一级评论，每条附带最早几条回复
func (s *CommentsService) GetComments(ctx context.Context, postID uint64, cursorStr string, limit int) (*types.CommentsListResponse, error) {
	cursorID, err := cursor.Decode(cursorStr)
	if err != nil {
		return nil, response.ErrInvalidOperation("无效的游标")
	}
	limit = normalizeLimit(limit)

	// 多取一条判断还有没有下一页
	comments, err := s.CommentDAO.GetRootCommentsByCursor(ctx, postID, uint64(cursorID), limit+1)
	if err != nil {
		return nil, err
	}
	comments, hasMore := trimPage(comments, limit)

	parentIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		parentIDs = append(parentIDs, c.ID)
	}
	previews, err := s.CommentDAO.BatchGetEarliestReplies(ctx, parentIDs, previewReplies)
	if err != nil {
		return nil, err
	}

	resp := &types.CommentsListResponse{
		Comments: make([]*types.CommentResponse, 0, len(comments)),
		HasMore:  hasMore,
	}
	for _, c := range comments {
		item := toCommentResponse(c)
		for _, reply := range previews[c.ID] {
			item.Replies = append(item.Replies, toCommentResponse(reply))
		}
		resp.Comments = append(resp.Comments, item)
	}
	if hasMore && len(comments) > 0 {
		resp.NextCursor = cursor.Encode(int64(comments[len(comments)-1].ID))
	}

	return resp, nil
}

// GetReplies 某条一级评论的回复，时间正序，偏移翻页
func (s *CommentsService) GetReplies(ctx context.Context, commentID uint64, offset, limit int) (*types.RepliesListResponse, error) {
	_, err := s.CommentDAO.GetByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.ErrNotFound("评论不存在")
	}
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	limit = normalizeLimit(limit)

	replies, err := s.CommentDAO.GetReplies(ctx, commentID, offset, limit+1)
	if err != nil {
		return nil, err
	}
	replies, hasMore := trimPage(replies, limit)

	resp := &types.RepliesListResponse{
		Replies: make([]*types.CommentResponse, 0, len(replies)),
		HasMore: hasMore,
	}
	for _, r := range replies {
		resp.Replies = append(resp.Replies, toCommentResponse(r))
	}
	return resp, nil
}

// 编辑和删除只放行评论作者本人
func authorizeCommentOwner(c *models.Comment, userID uint64) error {
	if c.UserID != userID {
		return response.ErrForbidden("只能操作自己的评论")
	}
	return nil
}

// applyEdit 把更新同步回内存里的行，updated_at 和库里 UPDATE 写的保持一致
func applyEdit(c *models.Comment, content string) {
	c.Content = content
	c.UpdatedAt = time.Now()
}

func toCommentResponse(c *models.Comment) *types.CommentResponse {
	return &types.CommentResponse{
		ID:         c.ID,
		PostID:     c.PostID,
		UserID:     c.UserID,
		ParentID:   c.ParentID,
		Content:    c.Content,
		ReplyCount: c.ReplyCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	n := utf8.RuneCountInString(content)
	if n == 0 {
		return "", response.ErrInvalidOperation("评论内容不能为空")
	}
	if n > maxCommentLen {
		return "", response.ErrInvalidOperation("评论内容不能超过500字")
	}
	return content, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return types.DefaultPageSize
	}
	if limit > maxCommentsPage {
		return maxCommentsPage
	}
	return limit
}

func trimPage(items []*models.Comment, limit int) ([]*models.Comment, bool) {
	if len(items) > limit {
		return items[:limit], true
	}
	return items, false
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLen {
		return content
	}
	return string(runes[:excerptLen]) + "…"
}
