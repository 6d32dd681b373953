package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisResetGuard 用Redis SETNX实现的每日一次闸门，
// 键带日期，过期时间覆盖两个整天，自然滚动失效。
type RedisResetGuard struct {
	client *redis.Client
}

func NewRedisResetGuard(client *redis.Client) *RedisResetGuard {
	return &RedisResetGuard{client: client}
}

func (g *RedisResetGuard) AcquireDaily(ctx context.Context, chatID, day string) (bool, error) {
	return g.client.SetNX(ctx, g.key(chatID, day), 1, 48*time.Hour).Result()
}

// ReleaseDaily 删除当天的闸门键，只在清零写入失败后调用
func (g *RedisResetGuard) ReleaseDaily(ctx context.Context, chatID, day string) error {
	return g.client.Del(ctx, g.key(chatID, day)).Err()
}

func (g *RedisResetGuard) key(chatID, day string) string {
	return fmt.Sprintf("streak_reset:%s:%s", day, chatID)
}
