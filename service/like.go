package service

import (
	"context"
	"errors"

	"Crux/dao"
	"Crux/pkg/log"
	"Crux/pkg/response"
	"Crux/types"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Bus 实时广播的抽象，socket.Hub 实现
type Bus interface {
	Publish(topic string, event string, payload any)
}

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, userID uint64, postID uint64) (*types.ToggleLikeResponse, error)
	IsLiked(ctx context.Context, userID uint64, postID uint64) (bool, error)
	GetLikeCount(ctx context.Context, postID uint64) (int64, error)
}

type LikeService struct {
	LikeDAO  *dao.PostLikeDAO
	StatsDAO *dao.PostStatsDAO
	PostDAO  *dao.PostDAO
	UserDAO  *dao.Users
	Notify   INotifyService
	Bus      Bus
}

// ToggleLike 点赞开关。先删后插：删到行说明之前已赞，这次是取消；
// 没删到就插入，唯一键冲突说明并发竞争，整个事务重试一次
func (s *LikeService) ToggleLike(ctx context.Context, userID uint64, postID uint64) (*types.ToggleLikeResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.ErrNotFound("帖子不存在")
	}

	var liked bool
	var count int64
	toggle := func() error {
		return s.LikeDAO.Transaction(ctx, func(tx *gorm.DB) error {
			deleted, err := s.LikeDAO.DeleteEdge(tx, postID, userID)
			if err != nil {
				return err
			}
			if deleted {
				liked = false
				if err := s.StatsDAO.IncrLikeCount(tx, postID, -1); err != nil {
					return err
				}
			} else {
				if err := s.LikeDAO.CreateEdge(tx, postID, userID); err != nil {
					return err
				}
				liked = true
				if err := s.StatsDAO.IncrLikeCount(tx, postID, 1); err != nil {
					return err
				}
			}
			count, err = s.StatsDAO.GetLikeCount(tx, postID)
			return err
		})
	}

	err = toggle()
	if isDupKeyErr(err) {
		// 两个请求同时插边，输的一方重试，这次会删到对方插入的行
		err = toggle()
		if isDupKeyErr(err) {
			return nil, response.ErrConflict("操作冲突，请稍后重试")
		}
	}
	if err != nil {
		return nil, err
	}

	// 事务提交后的通知和广播都是尽力而为，失败只记日志
	if liked {
		payload := types.PostLikedPayload{
			ActorName: s.UserDAO.Nickname(ctx, userID),
			PostTitle: post.Title,
		}
		if err := s.Notify.Dispatch(ctx, post.UserID, userID, payload, postID, "post"); err != nil {
			log.L.Warn("dispatch like notification error", zap.Uint64("post_id", postID), zap.Error(err))
		}
	}
	s.Bus.Publish(types.PostTopic(postID), types.EventPostLike, &types.PostLikeEvent{
		PostID:    postID,
		LikeCount: count,
	})

	return &types.ToggleLikeResponse{Liked: liked, LikeCount: count}, nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	return s.LikeDAO.IsLiked(ctx, postID, userID)
}

func (s *LikeService) GetLikeCount(ctx context.Context, postID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	return stats.LikeCount, nil
}

func isDupKeyErr(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
