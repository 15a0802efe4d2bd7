package service

import (
	"context"

	"Crux/dao"
	"Crux/models"
)

var _ IPreferenceService = (*PreferenceService)(nil)

type IPreferenceService interface {
	Allows(ctx context.Context, userID uint64, category string) (bool, error)
	Get(ctx context.Context, userID uint64) (*models.NotificationPreference, error)
	Update(ctx context.Context, userID uint64, pref *models.NotificationPreference) error
}

type PreferenceService struct {
	PreferenceDAO *dao.NotificationPreferenceDAO
}

// Allows 收件人是否接收该分类的通知，没有偏好行时全部默认开启
func (s *PreferenceService) Allows(ctx context.Context, userID uint64, category string) (bool, error) {
	pref, err := s.PreferenceDAO.GetByUserID(ctx, userID)
	if err != nil {
		return true, err
	}
	return pref.Allows(category), nil
}

// Get 查询偏好，没有偏好行时返回全开的默认值
func (s *PreferenceService) Get(ctx context.Context, userID uint64) (*models.NotificationPreference, error) {
	pref, err := s.PreferenceDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return &models.NotificationPreference{
			UserID:          userID,
			Messages:        true,
			PostLikes:       true,
			PostComments:    true,
			CommentReplies:  true,
			GearListInvites: true,
			Follows:         true,
		}, nil
	}
	return pref, nil
}

// Update 保存偏好
func (s *PreferenceService) Update(ctx context.Context, userID uint64, pref *models.NotificationPreference) error {
	pref.UserID = userID
	return s.PreferenceDAO.Upsert(ctx, pref)
}
