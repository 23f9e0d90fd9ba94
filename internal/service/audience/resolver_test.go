package audience

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/errs"
	"notification-targeting/internal/repository"
	repomocks "notification-targeting/internal/repository/mocks"
)

func customer(id, name string) domain.Recipient {
	return domain.Recipient{ID: id, UserType: domain.UserTypeCustomer, DisplayName: name}
}

// expectDirectory 让 mock 目录按 known 返回，其他ID返回找不到
func expectDirectory(repo *repomocks.MockRecipientRepository, known map[string]domain.Recipient) {
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), domain.UserTypeCustomer).
		DoAndReturn(func(_ any, id string, _ domain.UserType) (domain.Recipient, error) {
			r, ok := known[id]
			if !ok {
				return domain.Recipient{}, fmt.Errorf("%w: %s", errs.ErrRecipientNotFound, id)
			}
			return r, nil
		}).AnyTimes()
}

func TestResolver_ResolveDirect(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		userID  string
		mock    func(ctrl *gomock.Controller) repository.RecipientRepository
		want    domain.Audience
		wantErr error
	}{
		{
			name:   "解析成功",
			userID: "u1",
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "u1", domain.UserTypeCustomer).Return(customer("u1", "Jean"), nil)
				return repo
			},
			want: domain.Audience{Recipients: []domain.Recipient{customer("u1", "Jean")}},
		},
		{
			name:   "前后空白被去掉",
			userID: "  u1 ",
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "u1", domain.UserTypeCustomer).Return(customer("u1", "Jean"), nil)
				return repo
			},
			want: domain.Audience{Recipients: []domain.Recipient{customer("u1", "Jean")}},
		},
		{
			name:   "用户不存在",
			userID: "ghost",
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "ghost", domain.UserTypeCustomer).
					Return(domain.Recipient{}, fmt.Errorf("%w: ghost", errs.ErrRecipientNotFound))
				return repo
			},
			wantErr: errs.ErrRecipientNotFound,
		},
		{
			name:   "目录不可用",
			userID: "u1",
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "u1", domain.UserTypeCustomer).
					Return(domain.Recipient{}, fmt.Errorf("%w: 超时", errs.ErrDirectoryUnavailable))
				return repo
			},
			wantErr: errs.ErrDirectoryUnavailable,
		},
		{
			name:   "空白ID",
			userID: "   ",
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				return repomocks.NewMockRecipientRepository(ctrl)
			},
			wantErr: errs.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := NewResolver(tc.mock(ctrl), 0)
			got, err := r.ResolveDirect(context.Background(), tc.userID, domain.UserTypeCustomer)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolver_ResolveExplicit(t *testing.T) {
	t.Parallel()

	known := map[string]domain.Recipient{
		"A":  customer("A", "Ana"),
		"B":  customer("B", "Bo"),
		"u1": customer("u1", "Jean"),
		"u2": customer("u2", "Marie"),
	}

	testCases := []struct {
		name    string
		userIDs []string
		want    domain.Audience
	}{
		{
			name:    "重复ID只保留首次出现",
			userIDs: []string{"A", "A", "B"},
			want:    domain.Audience{Recipients: []domain.Recipient{known["A"], known["B"]}},
		},
		{
			name:    "与不含重复的列表结果一致",
			userIDs: []string{"A", "B"},
			want:    domain.Audience{Recipients: []domain.Recipient{known["A"], known["B"]}},
		},
		{
			name:    "保持首次出现的顺序",
			userIDs: []string{"B", "A", "B"},
			want:    domain.Audience{Recipients: []domain.Recipient{known["B"], known["A"]}},
		},
		{
			name:    "解析不到的ID被丢弃",
			userIDs: []string{"u1", "u2", "ghost"},
			want: domain.Audience{
				Recipients: []domain.Recipient{known["u1"], known["u2"]},
				Unresolved: []string{"ghost"},
			},
		},
		{
			name:    "空白ID被忽略",
			userIDs: []string{" ", "u1", ""},
			want:    domain.Audience{Recipients: []domain.Recipient{known["u1"]}},
		},
		{
			name:    "全部解析失败返回空集合",
			userIDs: []string{"x", "y"},
			want:    domain.Audience{Unresolved: []string{"x", "y"}},
		},
		{
			name: "空列表",
			want: domain.Audience{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockRecipientRepository(ctrl)
			expectDirectory(repo, known)

			r := NewResolver(repo, 2)
			got, err := r.ResolveExplicit(context.Background(), tc.userIDs, domain.UserTypeCustomer)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolver_ResolveSegment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		segment domain.Segment
		mock    func(ctrl *gomock.Controller) repository.RecipientRepository
		want    domain.Audience
		wantErr error
	}{
		{
			name:    "转发分群给目录",
			segment: domain.SegmentActive,
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindBySegment(gomock.Any(), domain.SegmentActive, domain.UserTypeCustomer).
					Return([]domain.Recipient{customer("u1", "Jean"), customer("u2", "Marie")}, nil)
				return repo
			},
			want: domain.Audience{Recipients: []domain.Recipient{customer("u1", "Jean"), customer("u2", "Marie")}},
		},
		{
			name:    "过滤其他用户类型和重复项",
			segment: domain.SegmentAll,
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindBySegment(gomock.Any(), domain.SegmentAll, domain.UserTypeCustomer).
					Return([]domain.Recipient{
						customer("u1", "Jean"),
						{ID: "d1", UserType: domain.UserTypeDriver},
						customer("u1", "Jean"),
					}, nil)
				return repo
			},
			want: domain.Audience{Recipients: []domain.Recipient{customer("u1", "Jean")}},
		},
		{
			name:    "空分群",
			segment: domain.SegmentInactive,
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindBySegment(gomock.Any(), domain.SegmentInactive, domain.UserTypeCustomer).Return(nil, nil)
				return repo
			},
			want: domain.Audience{Recipients: []domain.Recipient{}},
		},
		{
			name:    "目录不可用返回空集合",
			segment: domain.SegmentNew,
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				repo := repomocks.NewMockRecipientRepository(ctrl)
				repo.EXPECT().FindBySegment(gomock.Any(), domain.SegmentNew, domain.UserTypeCustomer).
					Return(nil, fmt.Errorf("%w: %w", errs.ErrDirectoryUnavailable, errors.New("连接被拒绝")))
				return repo
			},
			want: domain.Audience{},
		},
		{
			name:    "未知分群",
			segment: domain.Segment("vip"),
			mock: func(ctrl *gomock.Controller) repository.RecipientRepository {
				return repomocks.NewMockRecipientRepository(ctrl)
			},
			wantErr: errs.ErrUnknownSegment,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := NewResolver(tc.mock(ctrl), 0)
			got, err := r.ResolveSegment(context.Background(), tc.segment, domain.UserTypeCustomer)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got.Recipients, len(tc.want.Recipients))
		})
	}
}
