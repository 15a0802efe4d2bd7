package dao

import (
	"context"
	"errors"

	"Crux/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.User](db)}
}

// GetByID 查询用户，不存在返回 nil
func (d *Users) GetByID(ctx context.Context, userID uint64) (*models.User, error) {
	var item models.User
	err := d.Db.WithContext(ctx).Where("id = ?", userID).Limit(1).Find(&item).Error
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

// Nickname 拿昵称渲染通知文案用，查不到返回占位
func (d *Users) Nickname(ctx context.Context, userID uint64) string {
	user, err := d.GetByID(ctx, userID)
	if err != nil || user == nil {
		return "攀友"
	}
	return user.Nickname
}
