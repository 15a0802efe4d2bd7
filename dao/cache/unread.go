package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读数缓存过期时间 - 7天
const unreadExpireAt = 7 * 24 * time.Hour

// UnreadStorage 通知未读数缓存
// 缓存只是计数的影子，落库成功后增减；不可信时直接删 key 回源
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{redis: rds}
}

func (u *UnreadStorage) key(userID uint64) string {
	return fmt.Sprintf("crux:notify:unread:%d", userID)
}

// Incr 新通知落库后未读数 +1
func (u *UnreadStorage) Incr(ctx context.Context, userID uint64) error {
	pipe := u.redis.Pipeline()
	pipe.Incr(ctx, u.key(userID))
	pipe.Expire(ctx, u.key(userID), unreadExpireAt)
	_, err := pipe.Exec(ctx)
	return err
}

// Get 读未读数，没有缓存返回 -1 让上层回源
func (u *UnreadStorage) Get(ctx context.Context, userID uint64) (int64, error) {
	val, err := u.redis.Get(ctx, u.key(userID)).Int64()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return val, nil
}

// Set 回源后回写
func (u *UnreadStorage) Set(ctx context.Context, userID uint64, count int64) error {
	return u.redis.Set(ctx, u.key(userID), count, unreadExpireAt).Err()
}

// Del 已读/清空后直接失效，下次读回源
func (u *UnreadStorage) Del(ctx context.Context, userID uint64) error {
	return u.redis.Del(ctx, u.key(userID)).Err()
}
