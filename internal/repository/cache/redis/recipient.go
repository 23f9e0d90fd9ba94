package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/repository/cache"
)

var _ cache.RecipientCache = (*recipientCache)(nil)

type recipientCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

func (c *recipientCache) Get(ctx context.Context, userType domain.UserType, userID string) (domain.Recipient, error) {
	val, err := c.client.Get(ctx, cache.RecipientKey(userType, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Recipient{}, cache.ErrKeyNotFound
		}
		return domain.Recipient{}, err
	}
	var r domain.Recipient
	err = json.Unmarshal(val, &r)
	return r, err
}

func (c *recipientCache) Set(ctx context.Context, r domain.Recipient) error {
	val, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cache.RecipientKey(r.UserType, r.ID), val, c.expiration).Err()
}

func (c *recipientCache) Del(ctx context.Context, userType domain.UserType, userID string) error {
	return c.client.Del(ctx, cache.RecipientKey(userType, userID)).Err()
}

func NewRecipientCache(client redis.Cmdable, expiration time.Duration) cache.RecipientCache {
	if expiration <= 0 {
		expiration = cache.DefaultExpiredTime
	}
	return &recipientCache{
		client:     client,
		expiration: expiration,
	}
}
