package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/errs"
	"notification-targeting/internal/repository/cache"
	"notification-targeting/internal/repository/dao"
)

type recipientRepository struct {
	dao dao.RecipientDAO
	// caches 由近到远排列，例如本地缓存在前，Redis 在后
	caches []cache.RecipientCache
	logger *elog.Component
}

func (repo *recipientRepository) FindByID(ctx context.Context, userID string, userType domain.UserType) (domain.Recipient, error) {
	for i, c := range repo.caches {
		r, err := c.Get(ctx, userType, userID)
		if err == nil {
			repo.backfill(ctx, r, repo.caches[:i])
			return r, nil
		}
		if !errors.Is(err, cache.ErrKeyNotFound) {
			// 缓存出问题不影响查询，继续往下找
			repo.logger.Warn("读取接收者缓存失败",
				elog.FieldErr(err),
				elog.String("userID", userID),
				elog.String("userType", userType.String()))
		}
	}

	entity, err := repo.dao.FindByUserID(ctx, userID, userType.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipient{}, fmt.Errorf("%w: userID = %s, userType = %s", errs.ErrRecipientNotFound, userID, userType)
		}
		return domain.Recipient{}, fmt.Errorf("%w: %w", errs.ErrDirectoryUnavailable, err)
	}
	r := repo.toDomain(entity)
	repo.backfill(ctx, r, repo.caches)
	return r, nil
}

func (repo *recipientRepository) FindBySegment(ctx context.Context, segment domain.Segment, userType domain.UserType) ([]domain.Recipient, error) {
	// 分群成员随时可能变化，不走缓存
	entities, err := repo.dao.FindBySegment(ctx, segment.String(), userType.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDirectoryUnavailable, err)
	}
	return slice.Map(entities, func(_ int, src dao.Recipient) domain.Recipient {
		return repo.toDomain(src)
	}), nil
}

func (repo *recipientRepository) backfill(ctx context.Context, r domain.Recipient, caches []cache.RecipientCache) {
	for _, c := range caches {
		if err := c.Set(ctx, r); err != nil {
			repo.logger.Warn("回写接收者缓存失败",
				elog.FieldErr(err),
				elog.String("userID", r.ID))
		}
	}
}

func (repo *recipientRepository) toDomain(r dao.Recipient) domain.Recipient {
	var attrs map[string]string
	if r.Attributes != "" {
		if err := json.Unmarshal([]byte(r.Attributes), &attrs); err != nil {
			repo.logger.Warn("接收者属性不是合法的JSON对象",
				elog.FieldErr(err),
				elog.String("userID", r.UserID))
		}
	}
	return domain.Recipient{
		ID:          r.UserID,
		UserType:    domain.UserType(r.UserType),
		DisplayName: r.DisplayName,
		Attributes:  attrs,
	}
}

// NewRecipientRepository caches 按由近到远的顺序传入，可以为空
func NewRecipientRepository(d dao.RecipientDAO, caches ...cache.RecipientCache) RecipientRepository {
	return &recipientRepository{
		dao:    d,
		caches: caches,
		logger: elog.DefaultLogger,
	}
}
