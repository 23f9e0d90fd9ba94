package errs

import "errors"

var (
	// ErrInvalidRequest 请求本身不合法，例如缺少标题、正文或目标用户
	ErrInvalidRequest = errors.New("请求参数非法")
	// ErrUnknownSegment 推广发送的目标分群不在支持列表中
	ErrUnknownSegment = errors.New("未知的用户分群")
	// ErrRecipientNotFound 单用户发送时用户目录中找不到接收者
	ErrRecipientNotFound = errors.New("接收者不存在")
	// ErrDirectoryUnavailable 用户目录不可用
	ErrDirectoryUnavailable = errors.New("用户目录不可用")

	ErrCircuitBreakerOpen = errors.New("circuit_breaker_open")
)
