package domain

import (
	"fmt"
	"strings"

	"notification-targeting/internal/errs"
)

// Kind 通知请求类型
type Kind string

const (
	KindDirect      Kind = "direct"      // 单用户发送
	KindBroadcast   Kind = "broadcast"   // 指定用户列表群发
	KindPromotional Kind = "promotional" // 按分群推广
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindDirect, KindBroadcast, KindPromotional:
		return true
	}
	return false
}

// UserType 决定查询哪一类接收者目录
type UserType string

const (
	UserTypeCustomer   UserType = "customer"
	UserTypeDriver     UserType = "driver"
	UserTypeRestaurant UserType = "restaurant"
)

func (u UserType) String() string {
	return string(u)
}

func (u UserType) IsValid() bool {
	switch u {
	case UserTypeCustomer, UserTypeDriver, UserTypeRestaurant:
		return true
	}
	return false
}

// PromoCodeKey 推广码在 data 中的键，同时也是模板变量名
const PromoCodeKey = "promo_code"

// Content 三种发送方式共用的通知内容
type Content struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Type  string         `json:"type"`
	Data  map[string]any `json:"data"`
}

// Promotion 推广发送的定向参数
type Promotion struct {
	PromoCode string   `json:"promoCode"`
	Segment   string   `json:"segment"`  // 未校验的原始取值
	UserType  UserType `json:"userType"` // 为空时默认 customer
}

// NotificationRequest 一次发送请求，由调用方构造，门面只消费一次
type NotificationRequest struct {
	Kind     Kind           `json:"kind"`
	Title    string         `json:"title"`    // 标题模板
	Body     string         `json:"body"`     // 正文模板
	Type     string         `json:"type"`     // 业务通知类型，透传给通道
	UserType UserType       `json:"userType"` // 接收者类型
	Targets  []string       `json:"targets"`  // direct 只有一个，broadcast 为列表
	Segment  Segment        `json:"segment"`  // 仅 promotional 使用
	Data     map[string]any `json:"data"`     // 透传数据，同时作为模板变量来源
}

// Validate 校验请求，失败的请求不会产生任何回执
func (r NotificationRequest) Validate() error {
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: Kind = %q", errs.ErrInvalidRequest, r.Kind)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: Title 不能为空", errs.ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Body) == "" {
		return fmt.Errorf("%w: Body 不能为空", errs.ErrInvalidRequest)
	}
	if !r.UserType.IsValid() {
		return fmt.Errorf("%w: UserType = %q", errs.ErrInvalidRequest, r.UserType)
	}

	switch r.Kind {
	case KindDirect:
		if len(r.Targets) != 1 || strings.TrimSpace(r.Targets[0]) == "" {
			return fmt.Errorf("%w: Targets = %v", errs.ErrInvalidRequest, r.Targets)
		}
	case KindBroadcast:
		if len(r.nonBlankTargets()) == 0 {
			return fmt.Errorf("%w: Targets = %v", errs.ErrInvalidRequest, r.Targets)
		}
	case KindPromotional:
		if !r.Segment.IsValid() {
			return fmt.Errorf("%w: Segment = %q", errs.ErrUnknownSegment, r.Segment)
		}
	}
	return nil
}

func (r NotificationRequest) nonBlankTargets() []string {
	res := make([]string, 0, len(r.Targets))
	for _, t := range r.Targets {
		if strings.TrimSpace(t) != "" {
			res = append(res, t)
		}
	}
	return res
}
