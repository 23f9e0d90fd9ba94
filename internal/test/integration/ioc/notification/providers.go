package notification

import (
	"github.com/ecodeclub/mq-api"
	"github.com/redis/go-redis/v9"
	"notification-targeting/internal/repository"
	"notification-targeting/internal/repository/cache"
	redisx "notification-targeting/internal/repository/cache/redis"
	"notification-targeting/internal/service/audience"
	"notification-targeting/internal/service/notification"
	"notification-targeting/internal/service/transport"
	"notification-targeting/internal/service/transport/console"
)

type Service struct {
	Svc  notification.Service
	Repo repository.RecipientRepository
	MQ   mq.MQ
}

func initCaches(client redis.Cmdable) []cache.RecipientCache {
	return []cache.RecipientCache{redisx.NewRecipientCache(client, cache.DefaultExpiredTime)}
}

func initResolver(repo repository.RecipientRepository) audience.Resolver {
	return audience.NewResolver(repo, 0)
}

func initTransport() transport.Transport {
	return console.NewTransport()
}
