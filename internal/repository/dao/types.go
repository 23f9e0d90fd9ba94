package dao

import "context"

//go:generate mockgen -source=./types.go -destination=./mocks/dao.mock.go -package=daomocks RecipientDAO
type RecipientDAO interface {
	// FindByUserID 按用户ID和类型查找，找不到返回 gorm.ErrRecordNotFound
	FindByUserID(ctx context.Context, userID, userType string) (Recipient, error)
	// FindBySegment 查找分群内指定类型的接收者，按 ID 升序
	FindBySegment(ctx context.Context, segment, userType string) ([]Recipient, error)
}
