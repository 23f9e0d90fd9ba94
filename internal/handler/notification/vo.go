package notification

// SendToUserReq 单用户发送
type SendToUserReq struct {
	UserID   string         `json:"user_id"`
	UserType string         `json:"user_type"` // customer、driver、restaurant
	Title    string         `json:"title"`     // 支持 {{变量}} 占位符
	Message  string         `json:"message"`
	Type     string         `json:"type"`
	Data     map[string]any `json:"data"`
}

// BroadcastReq 指定用户列表群发
type BroadcastReq struct {
	UserIDs  []string       `json:"user_ids"`
	UserType string         `json:"user_type"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Type     string         `json:"type"`
	Data     map[string]any `json:"data"`
}

// PromotionalReq 按分群推广
type PromotionalReq struct {
	Title         string         `json:"title"`
	Message       string         `json:"message"`
	Type          string         `json:"type"`
	PromoCode     string         `json:"promo_code"`
	TargetSegment string         `json:"target_segment"` // all、new、active、inactive
	UserType      string         `json:"user_type"`      // 可选，默认 customer
	Data          map[string]any `json:"data"`
}

// Receipt 后台结果面板和提示依赖的字段
type Receipt struct {
	ID          uint64    `json:"id,string"`
	Total       int       `json:"total"`
	Successful  int       `json:"successful"`
	Failed      int       `json:"failed"`
	Segment     string    `json:"segment,omitempty"`
	Targets     []string  `json:"targets,omitempty"`
	Unresolved  []string  `json:"unresolved,omitempty"`
	Failures    []Failure `json:"failures"`
	Interrupted bool      `json:"interrupted,omitempty"`
}

type Failure struct {
	RecipientID string `json:"recipientId"`
	Reason      string `json:"reason"`
}
