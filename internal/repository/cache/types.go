package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notification-targeting/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	RecipientPrefix    = "recipient"
	DefaultExpiredTime = 10 * time.Minute
)

//go:generate mockgen -source=./types.go -destination=./mocks/cache.mock.go -package=cachemocks RecipientCache
type RecipientCache interface {
	// Get 未命中返回 ErrKeyNotFound
	Get(ctx context.Context, userType domain.UserType, userID string) (domain.Recipient, error)
	Set(ctx context.Context, r domain.Recipient) error
	Del(ctx context.Context, userType domain.UserType, userID string) error
}

func RecipientKey(userType domain.UserType, userID string) string {
	return fmt.Sprintf("%s:%s:%s", RecipientPrefix, userType, userID)
}
