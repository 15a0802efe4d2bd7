package dao

import (
	"context"

	"Crux/models"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{Repo: NewRepo[models.UserStats](db)}
}

// IncrFollowerCount 粉丝数增减
func (d *UserStatsDAO) IncrFollowerCount(tx *gorm.DB, userID uint64, delta int64) error {
	return tx.Exec(
		"INSERT INTO user_stats (user_id, follower_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE follower_count = GREATEST(follower_count + ?, 0), updated_at = NOW()",
		userID, delta, delta,
	).Error
}

// IncrFollowingCount 关注数增减
func (d *UserStatsDAO) IncrFollowingCount(tx *gorm.DB, userID uint64, delta int64) error {
	return tx.Exec(
		"INSERT INTO user_stats (user_id, following_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE following_count = GREATEST(following_count + ?, 0), updated_at = NOW()",
		userID, delta, delta,
	).Error
}

// GetFollowerCount 事务内回读粉丝数
func (d *UserStatsDAO) GetFollowerCount(tx *gorm.DB, userID uint64) (int64, error) {
	var count int64
	err := tx.Model(&models.UserStats{}).
		Select("follower_count").
		Where("user_id = ?", userID).
		Scan(&count).Error
	return count, err
}

func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	var item models.UserStats
	err := d.Db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.UserID == 0 {
		return &models.UserStats{UserID: userID}, nil
	}
	return &item, nil
}
