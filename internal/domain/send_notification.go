package domain

// 单个接收者失败的原因
const (
	ReasonTitleTooLong = "title_too_long"
	ReasonBodyTooLong  = "body_too_long"
	ReasonTimeout      = "timeout"
)

// Message 渲染完成后交给通道的消息
type Message struct {
	RecipientID string         `json:"recipientId"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Type        string         `json:"type"`
	Data        map[string]any `json:"data"`
}

// Failure 单个接收者的失败记录
type Failure struct {
	RecipientID string `json:"recipientId"`
	Reason      string `json:"reason"`
}

// Receipt 一次发送的回执，满足 Successful + Failed == Total 且 len(Failures) == Failed
type Receipt struct {
	ID         uint64    `json:"id"`
	Kind       Kind      `json:"kind"`
	Total      int       `json:"total"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	Segment    Segment   `json:"segment,omitempty"`
	Targets    []string  `json:"targets,omitempty"`
	Unresolved []string  `json:"unresolved,omitempty"`
	Failures   []Failure `json:"failures"`
	// Interrupted 发送被取消，还有已解析的接收者没有被尝试
	Interrupted bool `json:"interrupted,omitempty"`
}
