package sender

import (
	"context"

	"notification-targeting/internal/domain"
)

// Dispatcher 逐个接收者渲染并发送，汇总成回执。
// 单个接收者的失败只会记录在回执里，Dispatch 本身不返回错误
//
//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=sendermocks Dispatcher
type Dispatcher interface {
	// Dispatch 返回的回执只填充 Total、Successful、Failed、Failures 和 Interrupted
	Dispatch(ctx context.Context, req domain.NotificationRequest, recipients []domain.Recipient) domain.Receipt
}
