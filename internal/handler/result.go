package handler

import "github.com/ecodeclub/ginx"

// 业务错误码，HTTP 状态码之外的细分
const (
	CodeInvalidRequest    = 400001
	CodeUnknownSegment    = 400002
	CodeInvalidDeadline   = 400003
	CodeRecipientNotFound = 404001
	CodeDuplicateRequest  = 409001
	CodeRateLimited       = 429001
	CodeSystemError       = 500001
)

var (
	SystemErrorResult = ginx.Result{
		Code: CodeSystemError,
		Msg:  "系统错误",
	}
	RateLimitedResult = ginx.Result{
		Code: CodeRateLimited,
		Msg:  "请求过于频繁",
	}
	DuplicateRequestResult = ginx.Result{
		Code: CodeDuplicateRequest,
		Msg:  "重复的请求",
	}
	InvalidDeadlineResult = ginx.Result{
		Code: CodeInvalidDeadline,
		Msg:  "请求截止时间格式错误",
	}
)
