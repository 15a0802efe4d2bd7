package service

import (
	"context"

	"Crux/dao"
	"Crux/dao/cache"
	"Crux/models"
	"Crux/pkg/cursor"
	"Crux/pkg/log"
	"Crux/pkg/response"
	"Crux/pkg/snowflake"
	"Crux/types"

	"go.uber.org/zap"
)

var _ INotifyService = (*NotifyService)(nil)

type INotifyService interface {
	Dispatch(ctx context.Context, recipientID, actorID uint64, payload types.NotificationPayload, relatedID uint64, relatedType string) error
	List(ctx context.Context, userID uint64, cursorStr string, limit int) (*types.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
	Clear(ctx context.Context, userID uint64) error
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type NotifyService struct {
	NotificationDAO *dao.NotificationDAO
	Preference      IPreferenceService
	Unread          *cache.UnreadStorage
	Bus             Bus
}

// Dispatch 派发一条通知：
// 1. 自己触发的动作不通知自己
// 2. 收件人偏好关掉的分类直接丢弃，不落库
// 3. 落库后推送到收件人的 user 话题，对方在线就能实时看到
func (s *NotifyService) Dispatch(ctx context.Context, recipientID, actorID uint64, payload types.NotificationPayload, relatedID uint64, relatedType string) error {
	if recipientID == actorID {
		return nil
	}

	allowed, err := s.Preference.Allows(ctx, recipientID, payload.Category())
	if err != nil {
		// 偏好读失败按默认开启处理，通知宁多勿漏
		log.L.Warn("read notification preference error", zap.Uint64("user_id", recipientID), zap.Error(err))
	}
	if !allowed {
		return nil
	}

	item := &models.Notification{
		ID:          uint64(snowflake.GenID()),
		UserID:      recipientID,
		ActorID:     actorID,
		Type:        payload.Type(),
		RelatedID:   relatedID,
		RelatedType: relatedType,
		Content:     payload.Render(),
	}
	if err := s.NotificationDAO.Create(ctx, item); err != nil {
		return err
	}

	if err := s.Unread.Incr(ctx, recipientID); err != nil {
		log.L.Warn("incr unread cache error", zap.Uint64("user_id", recipientID), zap.Error(err))
	}

	s.Bus.Publish(types.UserTopic(recipientID), types.EventNotifyNew, &types.NotifyNewEvent{
		ID:          item.ID,
		Type:        item.Type,
		RelatedID:   item.RelatedID,
		RelatedType: item.RelatedType,
		Content:     item.Content,
		IsRead:      false,
		CreatedAt:   item.CreatedAt.Unix(),
	})

	return nil
}

// List 游标翻页取通知，时间倒序
func (s *NotifyService) List(ctx context.Context, userID uint64, cursorStr string, limit int) (*types.NotificationListResponse, error) {
	cursorID, err := cursor.Decode(cursorStr)
	if err != nil {
		return nil, response.ErrInvalidOperation("无效的游标")
	}
	limit = normalizeLimit(limit)

	items, err := s.NotificationDAO.ListByCursor(ctx, userID, uint64(cursorID), limit+1)
	if err != nil {
		return nil, err
	}
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	resp := &types.NotificationListResponse{
		Notifications: make([]*types.NotificationItem, 0, len(items)),
		HasMore:       hasMore,
	}
	for _, item := range items {
		resp.Notifications = append(resp.Notifications, &types.NotificationItem{
			ID:          item.ID,
			Type:        item.Type,
			RelatedID:   item.RelatedID,
			RelatedType: item.RelatedType,
			Content:     item.Content,
			IsRead:      item.IsRead,
			CreatedAt:   item.CreatedAt.Unix(),
		})
	}
	if hasMore && len(items) > 0 {
		resp.NextCursor = cursor.Encode(int64(items[len(items)-1].ID))
	}

	return resp, nil
}

// MarkRead 标记单条已读，幂等；别人的通知标不到
func (s *NotifyService) MarkRead(ctx context.Context, userID, notificationID uint64) error {
	hit, err := s.NotificationDAO.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !hit {
		return response.ErrNotFound("通知不存在")
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *NotifyService) MarkAllRead(ctx context.Context, userID uint64) error {
	if err := s.NotificationDAO.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	if err := s.Unread.Set(ctx, userID, 0); err != nil {
		log.L.Warn("reset unread cache error", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return nil
}

func (s *NotifyService) Clear(ctx context.Context, userID uint64) error {
	if err := s.NotificationDAO.Clear(ctx, userID); err != nil {
		return err
	}
	if err := s.Unread.Set(ctx, userID, 0); err != nil {
		log.L.Warn("reset unread cache error", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return nil
}

// UnreadCount 未读数，缓存未命中回源数据库并回写
func (s *NotifyService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	cached, err := s.Unread.Get(ctx, userID)
	if err != nil {
		log.L.Warn("read unread cache error", zap.Uint64("user_id", userID), zap.Error(err))
	}
	if cached >= 0 {
		return cached, nil
	}

	count, err := s.NotificationDAO.UnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.Unread.Set(ctx, userID, count); err != nil {
		log.L.Warn("write unread cache error", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return count, nil
}

func (s *NotifyService) invalidateUnread(ctx context.Context, userID uint64) {
	if err := s.Unread.Del(ctx, userID); err != nil {
		log.L.Warn("invalidate unread cache error", zap.Uint64("user_id", userID), zap.Error(err))
	}
}
