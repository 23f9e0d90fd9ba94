package transport

import (
	"context"

	"notification-targeting/internal/domain"
)

// Transport 推送通道，每个接收者只会被调用一次。
// 返回的 error 文本会原样作为失败原因写入回执
//
//go:generate mockgen -source=./types.go -destination=./mocks/transport.mock.go -package=transportmocks Transport
type Transport interface {
	Send(ctx context.Context, msg domain.Message) error
}
