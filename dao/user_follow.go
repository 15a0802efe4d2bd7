package dao

import (
	"context"

	"Crux/models"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{Repo: NewRepo[models.UserFollow](db)}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// DeleteEdge 删除关注边，返回是否删到了行
func (d *UserFollowDAO) DeleteEdge(tx *gorm.DB, followerID, followeeID uint64) (bool, error) {
	res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.UserFollow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreateEdge 插入关注边
func (d *UserFollowDAO) CreateEdge(tx *gorm.DB, followerID, followeeID uint64) error {
	return tx.Create(&models.UserFollow{FollowerID: followerID, FolloweeID: followeeID}).Error
}
