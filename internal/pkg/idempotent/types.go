package idempotent

import "context"

//go:generate mockgen -source=./types.go -package=idempotentmocks -destination=./mocks/idempotent.mock.go IdempotencyService
type IdempotencyService interface {
	// Exists 登记 key 并返回登记前是否已经存在，同一个 key 只有第一次调用返回 false
	Exists(ctx context.Context, key string) (bool, error)
}
