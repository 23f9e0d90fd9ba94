package idempotent

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisIdempotencyService struct {
	client redis.Cmdable
	expiry time.Duration
}

func (c *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.getKey(key), "1", c.expiry).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (c *RedisIdempotencyService) getKey(key string) string {
	return fmt.Sprintf("notification:idempotency:%s", key)
}

// NewRedisIdempotencyService expiry 之后同一个 key 可以再次发送
func NewRedisIdempotencyService(client redis.Cmdable, expiry time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client: client,
		expiry: expiry,
	}
}
