package notification

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/event/receipt"
	"notification-targeting/internal/pkg/idgenerator"
	"notification-targeting/internal/service/audience"
	"notification-targeting/internal/service/sender"
)

const defaultPublishTimeout = time.Second

var _ Service = (*notificationService)(nil)

// notificationService 每次调用都是独立的一次性事务：解析、分发、返回回执，不保存中间状态
type notificationService struct {
	resolver   audience.Resolver
	dispatcher sender.Dispatcher
	idGen      idgenerator.Generator
	producer   receipt.ReceiptEventProducer

	publishTimeout time.Duration
	logger         *elog.Component
}

// NewNotificationService producer 可以为 nil，此时不发送回执事件
func NewNotificationService(
	resolver audience.Resolver,
	dispatcher sender.Dispatcher,
	idGen idgenerator.Generator,
	producer receipt.ReceiptEventProducer,
) Service {
	return &notificationService{
		resolver:       resolver,
		dispatcher:     dispatcher,
		idGen:          idGen,
		producer:       producer,
		publishTimeout: defaultPublishTimeout,
		logger:         elog.DefaultLogger,
	}
}

func (s *notificationService) SendToUser(ctx context.Context, userID string, userType domain.UserType, content domain.Content) (domain.Receipt, error) {
	userID = strings.TrimSpace(userID)
	req := newRequest(domain.KindDirect, userType, content)
	req.Targets = []string{userID}
	if err := req.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	aud, err := s.resolver.ResolveDirect(ctx, userID, userType)
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.dispatch(ctx, req, aud), nil
}

func (s *notificationService) Broadcast(ctx context.Context, userIDs []string, userType domain.UserType, content domain.Content) (domain.Receipt, error) {
	req := newRequest(domain.KindBroadcast, userType, content)
	req.Targets = userIDs
	if err := req.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	aud, err := s.resolver.ResolveExplicit(ctx, userIDs, userType)
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.dispatch(ctx, req, aud), nil
}

func (s *notificationService) SendPromotional(ctx context.Context, content domain.Content, promotion domain.Promotion) (domain.Receipt, error) {
	userType := promotion.UserType
	if userType == "" {
		userType = domain.UserTypeCustomer
	}
	req := newRequest(domain.KindPromotional, userType, content)
	req.Segment = domain.Segment(strings.TrimSpace(promotion.Segment))
	if code := strings.TrimSpace(promotion.PromoCode); code != "" {
		req.Data = maps.Clone(req.Data)
		if req.Data == nil {
			req.Data = make(map[string]any, 1)
		}
		req.Data[domain.PromoCodeKey] = code
	}
	if err := req.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	aud, err := s.resolver.ResolveSegment(ctx, req.Segment, userType)
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.dispatch(ctx, req, aud), nil
}

// dispatch 请求已经合法，之后的任何问题都只体现在回执里
func (s *notificationService) dispatch(ctx context.Context, req domain.NotificationRequest, aud domain.Audience) domain.Receipt {
	res := s.dispatcher.Dispatch(ctx, req, aud.Recipients)
	res.Kind = req.Kind
	res.Unresolved = aud.Unresolved
	switch req.Kind {
	case domain.KindPromotional:
		res.Segment = req.Segment
	default:
		res.Targets = req.Targets
	}

	id, err := s.idGen.NextID()
	if err != nil {
		s.logger.Warn("生成回执ID失败", elog.FieldErr(err))
	}
	res.ID = id

	s.logger.Info("通知分发完成",
		elog.Any("receiptId", res.ID),
		elog.String("kind", req.Kind.String()),
		elog.String("userType", req.UserType.String()),
		elog.Int("total", res.Total),
		elog.Int("successful", res.Successful),
		elog.Int("failed", res.Failed),
		elog.Int("unresolved", len(res.Unresolved)),
		elog.Any("interrupted", res.Interrupted))

	s.publish(ctx, req, res)
	return res
}

func (s *notificationService) publish(ctx context.Context, req domain.NotificationRequest, res domain.Receipt) {
	if s.producer == nil {
		return
	}
	// 调用方取消不影响审计事件
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	err := s.producer.Produce(ctx, receipt.ReceiptEvent{
		Receipt:  res,
		UserType: req.UserType,
		Type:     req.Type,
		SentAt:   time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送回执事件失败",
			elog.FieldErr(err),
			elog.Any("receiptId", res.ID))
	}
}

func newRequest(kind domain.Kind, userType domain.UserType, content domain.Content) domain.NotificationRequest {
	return domain.NotificationRequest{
		Kind:     kind,
		Title:    content.Title,
		Body:     content.Body,
		Type:     content.Type,
		UserType: userType,
		Data:     content.Data,
	}
}
