package dao

import (
	"context"
	"errors"

	"Crux/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// GetByID 查询帖子，不存在返回 nil
func (d *PostDAO) GetByID(ctx context.Context, postID uint64) (*models.Post, error) {
	var item models.Post
	err := d.Db.WithContext(ctx).Where("id = ?", postID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
