package local

import (
	"context"
	"errors"
	"time"

	ca "github.com/patrickmn/go-cache"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/repository/cache"
)

var _ cache.RecipientCache = (*Cache)(nil)

// Cache 进程内接收者缓存，过期时间比 Redis 短，用来挡住同一批群发里的重复查询
type Cache struct {
	localCache *ca.Cache
	expiration time.Duration
}

func (c *Cache) Get(_ context.Context, userType domain.UserType, userID string) (domain.Recipient, error) {
	v, ok := c.localCache.Get(cache.RecipientKey(userType, userID))
	if !ok {
		return domain.Recipient{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.Recipient)
	if !ok {
		return domain.Recipient{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (c *Cache) Set(_ context.Context, r domain.Recipient) error {
	c.localCache.Set(cache.RecipientKey(r.UserType, r.ID), r, c.expiration)
	return nil
}

func (c *Cache) Del(_ context.Context, userType domain.UserType, userID string) error {
	c.localCache.Delete(cache.RecipientKey(userType, userID))
	return nil
}

// NewLocalCache expiration <= 0 时使用 cache.DefaultExpiredTime
func NewLocalCache(localCache *ca.Cache, expiration time.Duration) *Cache {
	if expiration <= 0 {
		expiration = cache.DefaultExpiredTime
	}
	return &Cache{
		localCache: localCache,
		expiration: expiration,
	}
}
