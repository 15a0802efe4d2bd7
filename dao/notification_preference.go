package dao

import (
	"errors"

	"Crux/models"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type NotificationPreferenceDAO struct {
	Repo[models.NotificationPreference]
}

func NewNotificationPreferenceDAO(db *gorm.DB) *NotificationPreferenceDAO {
	return &NotificationPreferenceDAO{Repo: NewRepo[models.NotificationPreference](db)}
}

// GetByUserID 查询用户偏好行，没有行返回 nil（语义是全部默认开启）
func (d *NotificationPreferenceDAO) GetByUserID(ctx context.Context, userID uint64) (*models.NotificationPreference, error) {
	var item models.NotificationPreference
	err := d.Db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.UserID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Upsert 保存偏好
func (d *NotificationPreferenceDAO) Upsert(ctx context.Context, pref *models.NotificationPreference) error {
	return d.Db.WithContext(ctx).Save(pref).Error
}
