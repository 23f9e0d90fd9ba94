package notification

import (
	"context"

	"notification-targeting/internal/domain"
)

// Service 通知门面，对应后台的三种发送入口。
// 请求级错误（ErrInvalidRequest、ErrUnknownSegment、直发的 ErrRecipientNotFound）在发送前返回，
// 此时不会产生任何回执；接收者级别的失败都记录在回执里。
//
//go:generate mockgen -source=./types.go -destination=./mocks/notification.mock.go -package=notificationmocks Service
type Service interface {
	// SendToUser 发给单个用户，回执 Total 为 1
	SendToUser(ctx context.Context, userID string, userType domain.UserType, content domain.Content) (domain.Receipt, error)
	// Broadcast 发给指定的用户列表，解析不到的用户被丢弃
	Broadcast(ctx context.Context, userIDs []string, userType domain.UserType, content domain.Content) (domain.Receipt, error)
	// SendPromotional 按分群发送，推广码会注入到 data.promo_code
	SendPromotional(ctx context.Context, content domain.Content, promotion domain.Promotion) (domain.Receipt, error)
}
