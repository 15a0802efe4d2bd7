package dao

import (
	"context"

	"Crux/models"

	"gorm.io/gorm"
)

type PostStatsDAO struct {
	Repo[models.PostStats]
}

func NewPostStatsDAO(db *gorm.DB) *PostStatsDAO {
	return &PostStatsDAO{Repo: NewRepo[models.PostStats](db)}
}

// IncrLikeCount 点赞计数增减，避免负数；tx 传入边变更所在的事务句柄
func (d *PostStatsDAO) IncrLikeCount(tx *gorm.DB, postID uint64, delta int64) error {
	return tx.Exec(
		"INSERT INTO post_stats (post_id, like_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE like_count = GREATEST(like_count + ?, 0), updated_at = NOW()",
		postID, delta, delta,
	).Error
}

// IncrCommentCount 评论计数增减，避免负数
func (d *PostStatsDAO) IncrCommentCount(tx *gorm.DB, postID uint64, delta int64) error {
	return tx.Exec(
		"INSERT INTO post_stats (post_id, comment_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE comment_count = GREATEST(comment_count + ?, 0), updated_at = NOW()",
		postID, delta, delta,
	).Error
}

// GetLikeCount 事务内回读最新计数，广播和响应都用这个绝对值
func (d *PostStatsDAO) GetLikeCount(tx *gorm.DB, postID uint64) (int64, error) {
	var count int64
	err := tx.Model(&models.PostStats{}).
		Select("like_count").
		Where("post_id = ?", postID).
		Scan(&count).Error
	return count, err
}

// GetCommentCount 事务内回读评论计数
func (d *PostStatsDAO) GetCommentCount(tx *gorm.DB, postID uint64) (int64, error) {
	var count int64
	err := tx.Model(&models.PostStats{}).
		Select("comment_count").
		Where("post_id = ?", postID).
		Scan(&count).Error
	return count, err
}

func (d *PostStatsDAO) GetByPostID(ctx context.Context, postID uint64) (*models.PostStats, error) {
	var item models.PostStats
	err := d.Db.WithContext(ctx).Where("post_id = ?", postID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.PostID == 0 {
		return &models.PostStats{PostID: postID}, nil
	}
	return &item, nil
}
