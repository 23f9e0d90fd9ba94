package audience

import (
	"context"

	"notification-targeting/internal/domain"
)

// Resolver 把定向指令转换为有序、去重的接收者集合
//
//go:generate mockgen -source=./types.go -destination=./mocks/audience.mock.go -package=audiencemocks Resolver
type Resolver interface {
	// ResolveDirect 单用户定向，找不到返回 errs.ErrRecipientNotFound
	ResolveDirect(ctx context.Context, userID string, userType domain.UserType) (domain.Audience, error)
	// ResolveExplicit 指定用户列表，解析不到的ID被丢弃并记录在 Audience.Unresolved 中
	ResolveExplicit(ctx context.Context, userIDs []string, userType domain.UserType) (domain.Audience, error)
	// ResolveSegment 分群定向，只校验分群取值，目录不可用时返回空集合
	ResolveSegment(ctx context.Context, segment domain.Segment, userType domain.UserType) (domain.Audience, error)
}
