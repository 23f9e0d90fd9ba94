package receipt

import (
	"context"

	"notification-targeting/internal/domain"
)

const TopicName = "notification_receipts"

//go:generate mockgen -source=./types.go -package=evtmocks -destination=../mocks/receipt_event_producer.mock.go ReceiptEventProducer
type ReceiptEventProducer interface {
	Produce(ctx context.Context, evt ReceiptEvent) error
}

// ReceiptEvent 每次分发完成后的审计事件，由下游负责持久化
type ReceiptEvent struct {
	Receipt  domain.Receipt  `json:"receipt"`
	UserType domain.UserType `json:"userType"`
	Type     string          `json:"type"`   // 业务通知类型
	SentAt   int64           `json:"sentAt"` // 毫秒时间戳
}
