package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"notification-targeting/internal/handler"
)

// DeadlineHeader 调用方传入的截止时间，毫秒时间戳
const DeadlineHeader = "X-Request-Deadline"

// Timeout 把截止时间注入到请求的 context 中，超过截止时间后不再发起新的发送
func Timeout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		val := ctx.GetHeader(DeadlineHeader)
		if val == "" {
			ctx.Next()
			return
		}
		deadline, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, handler.InvalidDeadlineResult)
			return
		}

		newCtx, cancel := context.WithDeadline(ctx.Request.Context(), time.UnixMilli(deadline))
		defer cancel()
		ctx.Request = ctx.Request.WithContext(newCtx)
		ctx.Next()
	}
}
