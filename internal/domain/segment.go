package domain

import (
	"fmt"

	"notification-targeting/internal/errs"
)

// Segment 推广发送的目标分群，取值是封闭集合。
// 分群的具体判定（注册多久算新用户、多久下单算活跃）由用户目录负责。
type Segment string

const (
	SegmentAll      Segment = "all"
	SegmentNew      Segment = "new"
	SegmentActive   Segment = "active"
	SegmentInactive Segment = "inactive"
)

func (s Segment) String() string {
	return string(s)
}

func (s Segment) IsValid() bool {
	switch s {
	case SegmentAll, SegmentNew, SegmentActive, SegmentInactive:
		return true
	}
	return false
}

// ParseSegment 把外部传入的字符串转换为分群，未知取值直接报错
func ParseSegment(s string) (Segment, error) {
	seg := Segment(s)
	if !seg.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownSegment, s)
	}
	return seg, nil
}
