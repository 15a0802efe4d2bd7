package dao

import (
	"context"

	"Crux/models"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{Repo: NewRepo[models.Comment](db)}
}

func (d *Comment) Create(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

// GetByID 根据ID获取评论，软删除的行不可见
func (d *Comment) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetRootCommentsByCursor 游标获取一级评论，时间倒序。
// 游标是上一页最后一条的评论 ID，翻页取 ID 更小的（雪花 ID 随时间递增）
func (d *Comment) GetRootCommentsByCursor(ctx context.Context, postID uint64, cursorID uint64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("post_id = ? AND parent_id = 0", postID)

	if cursorID > 0 {
		query = query.Where("id < ?", cursorID)
	}

	err := query.
		Order("id DESC").
		Limit(limit).
		Find(&comments).Error

	return comments, err
}

// BatchGetEarliestReplies 批量获取多个一级评论最早的几条回复(正序)
func (d *Comment) BatchGetEarliestReplies(ctx context.Context, parentIDs []uint64, limit int) (map[uint64][]*models.Comment, error) {
	result := make(map[uint64][]*models.Comment)
	if len(parentIDs) == 0 {
		return result, nil
	}

	var replies []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("parent_id, id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	// 分组，每组只保留前 limit 条
	for _, reply := range replies {
		if len(result[reply.ParentID]) < limit {
			result[reply.ParentID] = append(result[reply.ParentID], reply)
		}
	}

	return result, nil
}

// GetReplies 获取某条一级评论的回复(分页，时间正序)
func (d *Comment) GetReplies(ctx context.Context, parentID uint64, offset, limit int) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&replies).Error
	return replies, err
}

// UpdateContent 编辑评论内容
func (d *Comment) UpdateContent(ctx context.Context, commentID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

// CountLiveReplies 事务内统计存活回复数，级联删除的扣减额度来自这个快照
func (d *Comment) CountLiveReplies(tx *gorm.DB, parentID uint64) (int64, error) {
	var count int64
	err := tx.Model(&models.Comment{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	return count, err
}

// SoftDeleteReplies 事务内级联软删除回复
func (d *Comment) SoftDeleteReplies(tx *gorm.DB, parentID uint64) error {
	return tx.Where("parent_id = ?", parentID).Delete(&models.Comment{}).Error
}

// SoftDelete 事务内软删除单条评论
func (d *Comment) SoftDelete(tx *gorm.DB, commentID uint64) error {
	return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
}

// IncrReplyCount 一级评论的回复数增减
func (d *Comment) IncrReplyCount(tx *gorm.DB, commentID uint64, delta int) error {
	return tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("reply_count", gorm.Expr("GREATEST(reply_count + ?, 0)", delta)).
		Error
}
