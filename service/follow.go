package service

import (
	"context"

	"Crux/dao"
	"Crux/pkg/log"
	"Crux/pkg/response"
	"Crux/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	ToggleFollow(ctx context.Context, followerID, followeeID uint64) (*types.ToggleFollowResponse, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	StatsDAO  *dao.UserStatsDAO
	UserDAO   *dao.Users
	Notify    INotifyService
	Bus       Bus
}

// ToggleFollow 关注开关，与点赞同一套先删后插的事务
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, followeeID uint64) (*types.ToggleFollowResponse, error) {
	if followerID == followeeID {
		return nil, response.ErrInvalidOperation("不能关注自己")
	}

	followee, err := s.UserDAO.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if followee == nil {
		return nil, response.ErrNotFound("用户不存在")
	}

	var following bool
	var count int64
	toggle := func() error {
		return s.FollowDAO.Transaction(ctx, func(tx *gorm.DB) error {
			deleted, err := s.FollowDAO.DeleteEdge(tx, followerID, followeeID)
			if err != nil {
				return err
			}
			delta := int64(1)
			if deleted {
				following = false
				delta = -1
			} else {
				if err := s.FollowDAO.CreateEdge(tx, followerID, followeeID); err != nil {
					return err
				}
				following = true
			}
			if err := s.StatsDAO.IncrFollowerCount(tx, followeeID, delta); err != nil {
				return err
			}
			if err := s.StatsDAO.IncrFollowingCount(tx, followerID, delta); err != nil {
				return err
			}
			count, err = s.StatsDAO.GetFollowerCount(tx, followeeID)
			return err
		})
	}

	err = toggle()
	if isDupKeyErr(err) {
		err = toggle()
		if isDupKeyErr(err) {
			return nil, response.ErrConflict("操作冲突，请稍后重试")
		}
	}
	if err != nil {
		return nil, err
	}

	if following {
		payload := types.NewFollowerPayload{ActorName: s.UserDAO.Nickname(ctx, followerID)}
		if err := s.Notify.Dispatch(ctx, followeeID, followerID, payload, followerID, "user"); err != nil {
			log.L.Warn("dispatch follow notification error", zap.Uint64("followee_id", followeeID), zap.Error(err))
		}
	}
	s.Bus.Publish(types.UserTopic(followeeID), types.EventUserFollow, &types.UserFollowEvent{
		UserID:        followeeID,
		FollowerCount: count,
	})

	return &types.ToggleFollowResponse{Following: following, FollowerCount: count}, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return stats.FollowerCount, nil
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return stats.FollowingCount, nil
}
