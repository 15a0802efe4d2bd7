package dao

import (
	"context"

	"Crux/models"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// IsLiked 是否点赞，行存在即已点赞
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// DeleteEdge 删除点赞边，返回是否真的删到了行
// 事务内调用，删没删到决定这次 toggle 的方向
func (d *PostLikeDAO) DeleteEdge(tx *gorm.DB, postID, userID uint64) (bool, error) {
	res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreateEdge 插入点赞边，唯一键冲突原样抛给上层重试
func (d *PostLikeDAO) CreateEdge(tx *gorm.DB, postID, userID uint64) error {
	return tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
}
