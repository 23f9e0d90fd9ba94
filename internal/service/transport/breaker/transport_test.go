package breaker

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/errs"
	transportmocks "notification-targeting/internal/service/transport/mocks"
)

var errProvider = errors.New("provider_unavailable")

type fakeBreaker struct {
	open      bool
	successes int
	failures  int
}

func (b *fakeBreaker) Allow() error {
	if b.open {
		return circuitbreaker.ErrNotAllowed
	}
	return nil
}

func (b *fakeBreaker) MarkSuccess() { b.successes++ }

func (b *fakeBreaker) MarkFailed() { b.failures++ }

func TestTransport_Send(t *testing.T) {
	t.Parallel()

	msg := domain.Message{RecipientID: "u1"}

	testCases := []struct {
		name          string
		open          bool
		mock          func(ctrl *gomock.Controller) *transportmocks.MockTransport
		wantErr       error
		wantSuccesses int
		wantFailures  int
	}{
		{
			name: "放行并成功",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				m := transportmocks.NewMockTransport(ctrl)
				m.EXPECT().Send(gomock.Any(), msg).Return(nil)
				return m
			},
			wantSuccesses: 1,
		},
		{
			name: "放行但下游失败",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				m := transportmocks.NewMockTransport(ctrl)
				m.EXPECT().Send(gomock.Any(), msg).Return(errProvider)
				return m
			},
			wantErr:      errProvider,
			wantFailures: 1,
		},
		{
			name: "调用方取消不计入失败",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				m := transportmocks.NewMockTransport(ctrl)
				m.EXPECT().Send(gomock.Any(), msg).Return(context.Canceled)
				return m
			},
			wantErr: context.Canceled,
		},
		{
			name: "熔断打开时不调用下游",
			open: true,
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				return transportmocks.NewMockTransport(ctrl)
			},
			wantErr:      errs.ErrCircuitBreakerOpen,
			wantFailures: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b := &fakeBreaker{open: tc.open}
			err := NewTransport(tc.mock(ctrl), b).Send(context.Background(), msg)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantSuccesses, b.successes)
			assert.Equal(t, tc.wantFailures, b.failures)
		})
	}
}

func TestTransport_Reason(t *testing.T) {
	t.Parallel()
	// 回执里的失败原因就是错误文本
	assert.Equal(t, "circuit_breaker_open", errs.ErrCircuitBreakerOpen.Error())
}
