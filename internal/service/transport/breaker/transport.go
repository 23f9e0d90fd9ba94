package breaker

import (
	"context"
	"errors"

	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/gotomicro/ego/core/elog"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/errs"
	"notification-targeting/internal/service/transport"
)

var _ transport.Transport = (*Transport)(nil)

// Transport 通道熔断。熔断打开时直接失败，不会调用下游，也不会重试
type Transport struct {
	transport transport.Transport
	breaker   circuitbreaker.CircuitBreaker
	logger    *elog.Component
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	if err := t.breaker.Allow(); err != nil {
		t.breaker.MarkFailed()
		t.logger.Warn("通道熔断中，拒绝发送", elog.String("recipientId", msg.RecipientID))
		return errs.ErrCircuitBreakerOpen
	}

	err := t.transport.Send(ctx, msg)
	switch {
	case err == nil:
		t.breaker.MarkSuccess()
	case errors.Is(err, context.Canceled):
		// 调用方取消不代表通道不健康
	default:
		t.breaker.MarkFailed()
	}
	return err
}

func NewTransport(t transport.Transport, breaker circuitbreaker.CircuitBreaker) *Transport {
	return &Transport{
		transport: t,
		breaker:   breaker,
		logger:    elog.DefaultLogger,
	}
}
