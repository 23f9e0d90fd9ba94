package repository

import (
	"context"

	"notification-targeting/internal/domain"
)

// RecipientRepository 外部用户目录的只读视图
//
//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks RecipientRepository
type RecipientRepository interface {
	// FindByID 找不到返回 errs.ErrRecipientNotFound，目录异常返回 errs.ErrDirectoryUnavailable
	FindByID(ctx context.Context, userID string, userType domain.UserType) (domain.Recipient, error)
	// FindBySegment 分群判定完全由目录负责，结果顺序稳定
	FindBySegment(ctx context.Context, segment domain.Segment, userType domain.UserType) ([]domain.Recipient, error)
}
