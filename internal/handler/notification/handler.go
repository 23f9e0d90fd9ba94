package notification

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/errs"
	"notification-targeting/internal/handler"
	notificationsvc "notification-targeting/internal/service/notification"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         notificationsvc.Service
	middlewares []gin.HandlerFunc
	logger      *elog.Component
}

// NewHandler middlewares 只作用于通知相关的路由
func NewHandler(svc notificationsvc.Service, middlewares ...gin.HandlerFunc) *Handler {
	return &Handler{
		svc:         svc,
		middlewares: middlewares,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/notifications", h.middlewares...)
	g.POST("/send", ginx.B(h.SendToUser))
	g.POST("/broadcast", ginx.B(h.Broadcast))
	g.POST("/promotional", ginx.B(h.SendPromotional))
}

// SendToUser 发给单个用户
func (h *Handler) SendToUser(ctx *ginx.Context, req SendToUserReq) (ginx.Result, error) {
	receipt, err := h.svc.SendToUser(ctx.Request.Context(), req.UserID, domain.UserType(req.UserType), domain.Content{
		Title: req.Title,
		Body:  req.Message,
		Type:  req.Type,
		Data:  req.Data,
	})
	return h.toResult(receipt, err)
}

// Broadcast 发给指定的用户列表
func (h *Handler) Broadcast(ctx *ginx.Context, req BroadcastReq) (ginx.Result, error) {
	receipt, err := h.svc.Broadcast(ctx.Request.Context(), req.UserIDs, domain.UserType(req.UserType), domain.Content{
		Title: req.Title,
		Body:  req.Message,
		Type:  req.Type,
		Data:  req.Data,
	})
	return h.toResult(receipt, err)
}

// SendPromotional 按分群推广
func (h *Handler) SendPromotional(ctx *ginx.Context, req PromotionalReq) (ginx.Result, error) {
	receipt, err := h.svc.SendPromotional(ctx.Request.Context(), domain.Content{
		Title: req.Title,
		Body:  req.Message,
		Type:  req.Type,
		Data:  req.Data,
	}, domain.Promotion{
		PromoCode: req.PromoCode,
		Segment:   req.TargetSegment,
		UserType:  domain.UserType(req.UserType),
	})
	return h.toResult(receipt, err)
}

// toResult 请求级错误以业务错误码返回，其余错误按系统错误处理
func (h *Handler) toResult(receipt domain.Receipt, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "OK",
			Data: h.toReceiptVO(receipt),
		}, nil
	case errors.Is(err, errs.ErrInvalidRequest):
		return ginx.Result{Code: handler.CodeInvalidRequest, Msg: err.Error()}, nil
	case errors.Is(err, errs.ErrUnknownSegment):
		return ginx.Result{Code: handler.CodeUnknownSegment, Msg: err.Error()}, nil
	case errors.Is(err, errs.ErrRecipientNotFound):
		return ginx.Result{Code: handler.CodeRecipientNotFound, Msg: err.Error()}, nil
	default:
		h.logger.Error("发送通知失败", elog.FieldErr(err))
		return handler.SystemErrorResult, err
	}
}

func (h *Handler) toReceiptVO(src domain.Receipt) Receipt {
	return Receipt{
		ID:         src.ID,
		Total:      src.Total,
		Successful: src.Successful,
		Failed:     src.Failed,
		Segment:    src.Segment.String(),
		Targets:    src.Targets,
		Unresolved: src.Unresolved,
		Failures: slice.Map(src.Failures, func(_ int, f domain.Failure) Failure {
			return Failure{RecipientID: f.RecipientID, Reason: f.Reason}
		}),
		Interrupted: src.Interrupted,
	}
}
