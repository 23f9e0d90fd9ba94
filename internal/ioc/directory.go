package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"notification-targeting/internal/repository"
	"notification-targeting/internal/repository/cache"
	"notification-targeting/internal/repository/cache/local"
	redisx "notification-targeting/internal/repository/cache/redis"
	"notification-targeting/internal/service/audience"
)

type DirectoryConfig struct {
	LookupConcurrency int              `yaml:"lookupConcurrency"`
	LocalCache        CacheLayerConfig `yaml:"localCache"`
	RedisCache        CacheLayerConfig `yaml:"redisCache"`
}

type CacheLayerConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Expiration time.Duration `yaml:"expiration"`
}

func InitDirectoryConfig() DirectoryConfig {
	var cfg DirectoryConfig
	if err := econf.UnmarshalKey("notification.directory", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// InitRecipientCaches 由近到远：本地缓存、Redis
func InitRecipientCaches(cfg DirectoryConfig, client redis.Cmdable) []cache.RecipientCache {
	caches := make([]cache.RecipientCache, 0, 2)
	if cfg.LocalCache.Enabled {
		const cleanupInterval = 10 * time.Minute
		caches = append(caches, local.NewLocalCache(ca.New(cfg.LocalCache.Expiration, cleanupInterval), cfg.LocalCache.Expiration))
	}
	if cfg.RedisCache.Enabled {
		caches = append(caches, redisx.NewRecipientCache(client, cfg.RedisCache.Expiration))
	}
	return caches
}

func InitResolver(cfg DirectoryConfig, repo repository.RecipientRepository) audience.Resolver {
	return audience.NewResolver(repo, cfg.LookupConcurrency)
}
