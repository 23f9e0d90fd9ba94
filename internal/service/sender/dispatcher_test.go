package sender

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"notification-targeting/internal/domain"
	transportmocks "notification-targeting/internal/service/transport/mocks"
)

// fakeTransport 记录收到的消息，send 为空时总是成功
type fakeTransport struct {
	mu   sync.Mutex
	sent []domain.Message
	send func(ctx context.Context, msg domain.Message) error
}

func (f *fakeTransport) Send(ctx context.Context, msg domain.Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.send == nil {
		return nil
	}
	return f.send(ctx, msg)
}

func (f *fakeTransport) messages() map[string]domain.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[string]domain.Message, len(f.sent))
	for _, m := range f.sent {
		res[m.RecipientID] = m
	}
	return res
}

func customer(id, name string) domain.Recipient {
	return domain.Recipient{ID: id, UserType: domain.UserTypeCustomer, DisplayName: name}
}

func testConfig() domain.DispatchConfig {
	cfg := domain.DefaultDispatchConfig()
	cfg.Concurrency = 4
	cfg.SendTimeout = time.Second
	return cfg
}

func assertReceiptInvariant(t *testing.T, r domain.Receipt) {
	t.Helper()
	assert.Equal(t, r.Total, r.Successful+r.Failed)
	assert.Len(t, r.Failures, r.Failed)
}

func TestDispatcher_RenderAndSend(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := transportmocks.NewMockTransport(ctrl)
	// 每个接收者只发送一次
	tr.EXPECT().Send(gomock.Any(), domain.Message{
		RecipientID: "u1",
		Title:       "Hi Jean",
		Body:        "Order #123 ready",
		Type:        "order_update",
		Data:        map[string]any{"order_id": "123"},
	}).Return(nil).Times(1)

	d := NewDispatcher(tr, testConfig())
	receipt := d.Dispatch(context.Background(), domain.NotificationRequest{
		Kind:     domain.KindDirect,
		Title:    "Hi {{customer_name}}",
		Body:     "Order #{{order_id}} ready",
		Type:     "order_update",
		UserType: domain.UserTypeCustomer,
		Data:     map[string]any{"order_id": "123"},
	}, []domain.Recipient{customer("u1", "Jean")})

	assert.Equal(t, domain.Receipt{Total: 1, Successful: 1, Failures: []domain.Failure{}}, receipt)
}

func TestDispatcher_Variables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		title     string
		body      string
		data      map[string]any
		recipient domain.Recipient
		wantTitle string
		wantBody  string
	}{
		{
			name:      "接收者变量优先",
			title:     "Hi {{name}}",
			body:      "{{city}}",
			data:      map[string]any{"name": "Someone", "city": "Paris"},
			recipient: domain.Recipient{ID: "u1", UserType: domain.UserTypeCustomer, DisplayName: "Jean", Attributes: map[string]string{"city": "Lyon"}},
			wantTitle: "Hi Jean",
			wantBody:  "Lyon",
		},
		{
			name:      "数字和布尔值转成字符串",
			title:     "{{amount}} off",
			body:      "vip={{vip}}",
			data:      map[string]any{"amount": float64(20), "vip": true},
			recipient: customer("u1", "Jean"),
			wantTitle: "20 off",
			wantBody:  "vip=true",
		},
		{
			name:      "嵌套结构不参与渲染",
			title:     "{{meta}}",
			body:      "{{items}}",
			data:      map[string]any{"meta": map[string]any{"a": 1}, "items": []any{1, 2}},
			recipient: customer("u1", "Jean"),
			wantTitle: "{{meta}}",
			wantBody:  "{{items}}",
		},
		{
			name:      "缺失变量原样保留",
			title:     "Hi {{customer_name}}",
			body:      "Code {{promo_code}}",
			recipient: domain.Recipient{ID: "u1", UserType: domain.UserTypeCustomer},
			wantTitle: "Hi {{customer_name}}",
			wantBody:  "Code {{promo_code}}",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr := &fakeTransport{}
			d := NewDispatcher(tr, testConfig())
			receipt := d.Dispatch(context.Background(), domain.NotificationRequest{
				Title: tc.title,
				Body:  tc.body,
				Data:  tc.data,
			}, []domain.Recipient{tc.recipient})

			require.Equal(t, 1, receipt.Successful)
			msg := tr.messages()[tc.recipient.ID]
			assert.Equal(t, tc.wantTitle, msg.Title)
			assert.Equal(t, tc.wantBody, msg.Body)
			assert.Equal(t, tc.data, msg.Data)
		})
	}
}

func TestDispatcher_Budget(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Budget = domain.Budget{TitleMaxChars: 10, BodyMaxChars: 12}

	tr := &fakeTransport{}
	d := NewDispatcher(tr, cfg)
	receipt := d.Dispatch(context.Background(), domain.NotificationRequest{
		Title: "Hi {{name}}",
		Body:  "Bye {{note}}",
	}, []domain.Recipient{
		// "Hi Bertrand" 11 个字符
		customer("a", "Bertrand"),
		customer("b", "Al"),
		{ID: "c", UserType: domain.UserTypeCustomer, DisplayName: "Cy", Attributes: map[string]string{"note": "see you soon"}},
		// 按字符计数，"Hi 王小明的好朋友" 10 个字符
		customer("d", "王小明的好朋友"),
	})

	assert.Equal(t, 4, receipt.Total)
	assert.Equal(t, 2, receipt.Successful)
	assert.Equal(t, []domain.Failure{
		{RecipientID: "a", Reason: domain.ReasonTitleTooLong},
		{RecipientID: "c", Reason: domain.ReasonBodyTooLong},
	}, receipt.Failures)
	assertReceiptInvariant(t, receipt)

	sent := tr.messages()
	assert.Len(t, sent, 2)
	assert.Contains(t, sent, "b")
	assert.Contains(t, sent, "d")
}

func TestDispatcher_NoBudget(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Budget = domain.Budget{}

	tr := &fakeTransport{}
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	receipt := NewDispatcher(tr, cfg).Dispatch(context.Background(), domain.NotificationRequest{
		Title: string(long),
		Body:  string(long),
	}, []domain.Recipient{customer("u1", "Jean")})
	assert.Equal(t, 1, receipt.Successful)
}

func TestDispatcher_TransportFailure(t *testing.T) {
	t.Parallel()

	tr := &fakeTransport{
		send: func(_ context.Context, msg domain.Message) error {
			switch msg.RecipientID {
			case "u2":
				return errors.New("invalid_device_token")
			case "u4":
				return fmt.Errorf("provider: %w", errors.New("quota exceeded"))
			}
			return nil
		},
	}
	recipients := []domain.Recipient{
		customer("u1", "A"), customer("u2", "B"), customer("u3", "C"), customer("u4", "D"), customer("u5", "E"),
	}
	receipt := NewDispatcher(tr, testConfig()).Dispatch(context.Background(), domain.NotificationRequest{
		Title: "t", Body: "b",
	}, recipients)

	assert.Equal(t, 5, receipt.Total)
	assert.Equal(t, 3, receipt.Successful)
	// 失败原因原样保留，按解析顺序排列
	assert.Equal(t, []domain.Failure{
		{RecipientID: "u2", Reason: "invalid_device_token"},
		{RecipientID: "u4", Reason: "provider: quota exceeded"},
	}, receipt.Failures)
	assertReceiptInvariant(t, receipt)
	assert.False(t, receipt.Interrupted)
}

func TestDispatcher_ReceiptInvariant(t *testing.T) {
	t.Parallel()

	for _, concurrency := range []int{1, 3, 16} {
		concurrency := concurrency
		t.Run(fmt.Sprintf("并发%d", concurrency), func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			cfg.Concurrency = concurrency
			cfg.Budget.TitleMaxChars = 6

			recipients := make([]domain.Recipient, 0, 100)
			for i := 0; i < 100; i++ {
				recipients = append(recipients, customer(fmt.Sprintf("u%03d", i), strings.Repeat("x", i%7+1)))
			}
			tr := &fakeTransport{
				send: func(_ context.Context, msg domain.Message) error {
					if msg.Body == "xx" {
						return errors.New("rejected")
					}
					return nil
				},
			}
			receipt := NewDispatcher(tr, cfg).Dispatch(context.Background(), domain.NotificationRequest{
				// 名字长度 1 到 7，超过 3 个字符的标题超出预算
				Title: "Hi {{name}}",
				Body:  "{{name}}",
			}, recipients)

			assertReceiptInvariant(t, receipt)
			assert.Equal(t, 100, receipt.Total)
			assert.Equal(t, 29, receipt.Successful)
			for i := 1; i < len(receipt.Failures); i++ {
				assert.Less(t, receipt.Failures[i-1].RecipientID, receipt.Failures[i].RecipientID)
			}
		})
	}
}

func TestDispatcher_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	tr := &fakeTransport{
		send: func(ctx context.Context, msg domain.Message) error {
			if msg.RecipientID == "slow" {
				// 不理会 ctx 的通道
				<-release
			}
			return nil
		},
	}
	cfg := testConfig()
	cfg.SendTimeout = 50 * time.Millisecond

	start := time.Now()
	receipt := NewDispatcher(tr, cfg).Dispatch(context.Background(), domain.NotificationRequest{
		Title: "t", Body: "b",
	}, []domain.Recipient{customer("fast1", "A"), customer("slow", "B"), customer("fast2", "C")})

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 3, receipt.Total)
	assert.Equal(t, 2, receipt.Successful)
	assert.Equal(t, []domain.Failure{{RecipientID: "slow", Reason: domain.ReasonTimeout}}, receipt.Failures)
}

func TestDispatcher_TransportHonoursDeadline(t *testing.T) {
	t.Parallel()

	tr := &fakeTransport{
		send: func(ctx context.Context, _ domain.Message) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	cfg := testConfig()
	cfg.SendTimeout = 20 * time.Millisecond

	receipt := NewDispatcher(tr, cfg).Dispatch(context.Background(), domain.NotificationRequest{
		Title: "t", Body: "b",
	}, []domain.Recipient{customer("u1", "A")})
	assert.Equal(t, []domain.Failure{{RecipientID: "u1", Reason: domain.ReasonTimeout}}, receipt.Failures)
}

func TestDispatcher_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("开始前已取消", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tr := &fakeTransport{}
		receipt := NewDispatcher(tr, testConfig()).Dispatch(ctx, domain.NotificationRequest{
			Title: "t", Body: "b",
		}, []domain.Recipient{customer("u1", "A"), customer("u2", "B")})

		assert.Equal(t, domain.Receipt{Failures: []domain.Failure{}, Interrupted: true}, receipt)
		assert.Empty(t, tr.messages())
	})

	t.Run("发送过程中取消", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		tr := &fakeTransport{
			send: func(sendCtx context.Context, _ domain.Message) error {
				cancel()
				// 已经开始的发送不受取消影响
				return sendCtx.Err()
			},
		}
		cfg := testConfig()
		cfg.Concurrency = 1
		receipt := NewDispatcher(tr, cfg).Dispatch(ctx, domain.NotificationRequest{
			Title: "t", Body: "b",
		}, []domain.Recipient{customer("u1", "A"), customer("u2", "B"), customer("u3", "C")})

		assert.True(t, receipt.Interrupted)
		assert.Equal(t, 1, receipt.Total)
		assert.Equal(t, 1, receipt.Successful)
		assertReceiptInvariant(t, receipt)
		assert.Len(t, tr.messages(), 1)
	})
}

func TestDispatcher_Empty(t *testing.T) {
	t.Parallel()
	receipt := NewDispatcher(&fakeTransport{}, testConfig()).Dispatch(context.Background(), domain.NotificationRequest{}, nil)
	assert.Equal(t, domain.Receipt{Failures: []domain.Failure{}}, receipt)
}
