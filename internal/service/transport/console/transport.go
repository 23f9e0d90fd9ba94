package console

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/service/transport"
)

var _ transport.Transport = (*Transport)(nil)

// Transport 只把消息打到日志里，没有接入真实推送通道时使用
type Transport struct {
	logger *elog.Component
}

func NewTransport() *Transport {
	return &Transport{
		logger: elog.DefaultLogger,
	}
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.logger.Info("发送通知",
		elog.String("recipientId", msg.RecipientID),
		elog.String("title", msg.Title),
		elog.String("body", msg.Body),
		elog.String("type", msg.Type),
		elog.Any("data", msg.Data))
	return nil
}
