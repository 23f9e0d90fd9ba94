package ioc

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
	"notification-targeting/internal/handler/middleware"
	notificationweb "notification-targeting/internal/handler/notification"
	"notification-targeting/internal/pkg/idempotent"
	"notification-targeting/internal/pkg/ratelimit"
	notificationsvc "notification-targeting/internal/service/notification"
)

func InitNotificationHandler(svc notificationsvc.Service, client redis.Cmdable) *notificationweb.Handler {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("notification.rateLimit", &cfg); err != nil {
		panic(err)
	}
	idempotencyExpiry := econf.GetDuration("notification.idempotency.expiration")

	middlewares := []gin.HandlerFunc{middleware.Timeout()}
	// rate <= 0 表示不限流
	if cfg.Rate > 0 && cfg.Interval > 0 {
		limiter := ratelimit.NewRedisSlidingWindowLimiter(client, cfg.Interval, cfg.Rate)
		middlewares = append(middlewares, middleware.NewRateLimitBuilder(limiter, "notification:").Build())
	}
	// expiration <= 0 表示不做幂等检查
	if idempotencyExpiry > 0 {
		checker := idempotent.NewRedisIdempotencyService(client, idempotencyExpiry)
		middlewares = append(middlewares, middleware.NewIdempotencyBuilder(checker, "notification:").Build())
	}
	return notificationweb.NewHandler(svc, middlewares...)
}

func InitWeb(h *notificationweb.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	h.PublicRoutes(server.Engine)
	h.PrivateRoutes(server.Engine)
	return server
}
