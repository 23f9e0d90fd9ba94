package audience

import (
	"context"
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/errs"
	"notification-targeting/internal/repository"
)

const defaultLookupConcurrency = 16

type resolver struct {
	repo repository.RecipientRepository
	// lookupConcurrency 指定用户列表解析时并发查询目录的上限
	lookupConcurrency int
	logger            *elog.Component
}

// NewResolver lookupConcurrency <= 0 时使用默认值
func NewResolver(repo repository.RecipientRepository, lookupConcurrency int) Resolver {
	if lookupConcurrency <= 0 {
		lookupConcurrency = defaultLookupConcurrency
	}
	return &resolver{
		repo:              repo,
		lookupConcurrency: lookupConcurrency,
		logger:            elog.DefaultLogger,
	}
}

func (r *resolver) ResolveDirect(ctx context.Context, userID string, userType domain.UserType) (domain.Audience, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Audience{}, fmt.Errorf("%w: 用户ID为空", errs.ErrInvalidRequest)
	}
	recipient, err := r.repo.FindByID(ctx, userID, userType)
	if err != nil {
		return domain.Audience{}, err
	}
	return domain.Audience{Recipients: []domain.Recipient{recipient}}, nil
}

func (r *resolver) ResolveExplicit(ctx context.Context, userIDs []string, userType domain.UserType) (domain.Audience, error) {
	ids := dedup(userIDs)
	if len(ids) == 0 {
		return domain.Audience{}, nil
	}

	// 按下标写入，查询并发执行但结果保持首次出现的顺序
	found := make([]domain.Recipient, len(ids))
	lookupErrs := make([]error, len(ids))

	var eg errgroup.Group
	eg.SetLimit(r.lookupConcurrency)
	for i := range ids {
		i := i
		eg.Go(func() error {
			recipient, err := r.repo.FindByID(ctx, ids[i], userType)
			if err != nil {
				lookupErrs[i] = err
				return nil
			}
			found[i] = recipient
			return nil
		})
	}
	_ = eg.Wait()

	var (
		audience domain.Audience
		warnings *multierror.Error
	)
	for i, id := range ids {
		if lookupErrs[i] != nil {
			audience.Unresolved = append(audience.Unresolved, id)
			warnings = multierror.Append(warnings, fmt.Errorf("userID = %s: %w", id, lookupErrs[i]))
			continue
		}
		audience.Recipients = append(audience.Recipients, found[i])
	}

	if warnings.ErrorOrNil() != nil {
		r.logger.Warn("部分接收者无法解析，已丢弃",
			elog.FieldErr(warnings),
			elog.String("userType", userType.String()),
			elog.Int("requested", len(ids)),
			elog.Int("unresolved", len(audience.Unresolved)))
	}
	return audience, nil
}

func (r *resolver) ResolveSegment(ctx context.Context, segment domain.Segment, userType domain.UserType) (domain.Audience, error) {
	if !segment.IsValid() {
		return domain.Audience{}, fmt.Errorf("%w: %s", errs.ErrUnknownSegment, segment)
	}

	recipients, err := r.repo.FindBySegment(ctx, segment, userType)
	if err != nil {
		// 目录不可用视为空受众，推广发送成为一次合法的空操作
		r.logger.Warn("解析分群失败，按空集合处理",
			elog.FieldErr(err),
			elog.String("segment", segment.String()),
			elog.String("userType", userType.String()))
		return domain.Audience{}, nil
	}

	seen := make(map[string]struct{}, len(recipients))
	res := make([]domain.Recipient, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient.UserType != userType {
			continue
		}
		if _, ok := seen[recipient.ID]; ok {
			continue
		}
		seen[recipient.ID] = struct{}{}
		res = append(res, recipient)
	}
	return domain.Audience{Recipients: res}, nil
}

// dedup 去掉空白ID和重复ID，保留首次出现的顺序
func dedup(userIDs []string) []string {
	seen := make(map[string]struct{}, len(userIDs))
	res := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
