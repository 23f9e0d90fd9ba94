package sender

import (
	"context"
	"maps"

	"github.com/gotomicro/ego/core/elog"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/service/template"
	"notification-targeting/internal/service/transport"
)

var _ Dispatcher = (*dispatcher)(nil)

type dispatcher struct {
	transport transport.Transport
	cfg       domain.DispatchConfig
	logger    *elog.Component
}

// NewDispatcher Concurrency、SendTimeout 小于等于 0 时使用默认值，字符预算小于等于 0 表示不限制
func NewDispatcher(t transport.Transport, cfg domain.DispatchConfig) Dispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = domain.DefaultConcurrency
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = domain.DefaultSendTimeout
	}
	return &dispatcher{
		transport: t,
		cfg:       cfg,
		logger:    elog.DefaultLogger,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, req domain.NotificationRequest, recipients []domain.Recipient) domain.Receipt {
	b := &receiptBuilder{}
	static := staticVariables(req.Data)

	var eg errgroup.Group
	eg.SetLimit(d.cfg.Concurrency)
	for i := range recipients {
		i := i
		if ctx.Err() != nil {
			b.skip()
			break
		}
		eg.Go(func() error {
			// 排队期间可能已经被取消
			if ctx.Err() != nil {
				b.skip()
				return nil
			}
			r := recipients[i]
			if reason, ok := d.deliver(ctx, req, static, r); ok {
				b.success()
			} else {
				b.fail(i, r.ID, reason)
			}
			return nil
		})
	}
	_ = eg.Wait()

	receipt := b.build()
	if receipt.Interrupted {
		d.logger.Warn("发送被取消，部分接收者没有被尝试",
			elog.Int("resolved", len(recipients)),
			elog.Int("attempted", receipt.Total))
	}
	return receipt
}

// deliver 对单个接收者最多调用一次 transport，不重试
func (d *dispatcher) deliver(ctx context.Context, req domain.NotificationRequest,
	static map[string]string, r domain.Recipient) (string, bool) {
	vars := mergeVariables(static, r.Variables())
	title := template.Render(req.Title, vars)
	if !template.ValidateBudget(title, d.cfg.Budget.TitleMaxChars) {
		return domain.ReasonTitleTooLong, false
	}
	body := template.Render(req.Body, vars)
	if !template.ValidateBudget(body, d.cfg.Budget.BodyMaxChars) {
		return domain.ReasonBodyTooLong, false
	}
	if left := template.Tokens(title + "\n" + body); len(left) > 0 {
		d.logger.Debug("模板变量缺失，占位符原样保留", elog.String("recipientId", r.ID), elog.Any("keys", left))
	}

	msg := domain.Message{
		RecipientID: r.ID,
		Title:       title,
		Body:        body,
		Type:        req.Type,
		Data:        maps.Clone(req.Data),
	}

	// 已经开始的发送不受调用方取消影响，只受单个接收者的超时约束
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.transport.Send(sendCtx, msg)
	}()

	select {
	case err := <-done:
		if err == nil {
			return "", true
		}
		if sendCtx.Err() != nil {
			return domain.ReasonTimeout, false
		}
		d.logger.Debug("发送失败", elog.String("recipientId", r.ID), elog.FieldErr(err))
		return err.Error(), false
	case <-sendCtx.Done():
		return domain.ReasonTimeout, false
	}
}

// staticVariables 把请求中的标量字段转成模板变量，嵌套结构只透传给通道不参与渲染
func staticVariables(data map[string]any) map[string]string {
	vars := make(map[string]string, len(data))
	for k, v := range data {
		if v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		vars[k] = s
	}
	return vars
}

// mergeVariables 接收者自身的变量优先
func mergeVariables(static, recipient map[string]string) map[string]string {
	vars := make(map[string]string, len(static)+len(recipient))
	maps.Copy(vars, static)
	maps.Copy(vars, recipient)
	return vars
}
