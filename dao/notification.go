package dao

import (
	"context"

	"Crux/models"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

func (d *NotificationDAO) Create(ctx context.Context, item *models.Notification) error {
	return d.Db.WithContext(ctx).Create(item).Error
}

// ListByCursor 游标获取通知列表，时间倒序
func (d *NotificationDAO) ListByCursor(ctx context.Context, userID uint64, cursorID uint64, limit int) ([]*models.Notification, error) {
	var items []*models.Notification
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursorID > 0 {
		query = query.Where("id < ?", cursorID)
	}
	err := query.Order("id DESC").Limit(limit).Find(&items).Error
	return items, err
}

// MarkRead 标记单条已读，返回是否命中（已读重复标记也算命中，幂等）
func (d *NotificationDAO) MarkRead(ctx context.Context, notificationID, userID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// UPDATE 没改到行可能是已经读过了，区分"不归你"和"重复标记"
	return d.IsExist(ctx, "id = ? AND user_id = ?", notificationID, userID)
}

// MarkAllRead 全部标记已读，集合式更新，严格按 user_id 圈定
func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = 0", userID).
		Update("is_read", true).Error
}

// Clear 清空通知
func (d *NotificationDAO) Clear(ctx context.Context, userID uint64) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Notification{}).Error
}

// UnreadCount 未读数，缓存未命中时从库里数
func (d *NotificationDAO) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = 0", userID).
		Count(&count).Error
	return count, err
}
