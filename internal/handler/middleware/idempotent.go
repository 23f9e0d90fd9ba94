package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"notification-targeting/internal/handler"
	"notification-targeting/internal/pkg/idempotent"
)

// IdempotencyKeyHeader 客户端重试时带上相同的值，避免同一批通知被发送两次
const IdempotencyKeyHeader = "Idempotency-Key"

type IdempotencyBuilder struct {
	svc       idempotent.IdempotencyService
	keyPrefix string
	logger    *elog.Component
}

func NewIdempotencyBuilder(svc idempotent.IdempotencyService, keyPrefix string) *IdempotencyBuilder {
	return &IdempotencyBuilder{
		svc:       svc,
		keyPrefix: keyPrefix,
		logger:    elog.DefaultLogger,
	}
}

func (b *IdempotencyBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		idempotencyKey := ctx.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			ctx.Next()
			return
		}
		key := b.keyPrefix + ctx.FullPath() + ":" + idempotencyKey
		exists, err := b.svc.Exists(ctx.Request.Context(), key)
		if err != nil {
			// 幂等检查不可用时放行，最坏情况是重复发送
			b.logger.Warn("幂等检查失败", elog.FieldErr(err), elog.String("key", key))
			ctx.Next()
			return
		}
		if exists {
			b.logger.Warn("重复的请求", elog.String("key", key))
			ctx.AbortWithStatusJSON(http.StatusConflict, handler.DuplicateRequestResult)
			return
		}
		ctx.Next()
	}
}
