package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"notification-targeting/internal/handler"
	"notification-targeting/internal/pkg/ratelimit"
)

// RateLimitBuilder 按路由限流，保护下游的推送通道不被群发打满
type RateLimitBuilder struct {
	limiter   ratelimit.Limiter
	keyPrefix string
	logger    *elog.Component
}

func NewRateLimitBuilder(limiter ratelimit.Limiter, keyPrefix string) *RateLimitBuilder {
	return &RateLimitBuilder{
		limiter:   limiter,
		keyPrefix: keyPrefix,
		logger:    elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := b.keyPrefix + ctx.FullPath()
		limited, err := b.limiter.Limit(ctx.Request.Context(), key)
		if err != nil {
			// 保守策略，限流器不可用时直接拒绝
			b.logger.Error("限流器执行失败", elog.FieldErr(err), elog.String("key", key))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, handler.RateLimitedResult)
			return
		}
		if limited {
			b.logger.Warn("请求被限流", elog.String("key", key))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, handler.RateLimitedResult)
			return
		}
		ctx.Next()
	}
}
