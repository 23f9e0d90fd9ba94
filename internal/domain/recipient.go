package domain

// Recipient 接收者描述，来自外部用户目录
type Recipient struct {
	ID          string            `json:"id"`
	UserType    UserType          `json:"userType"`
	DisplayName string            `json:"displayName"`
	Attributes  map[string]string `json:"attributes"`
}

// Variables 接收者自身可以提供的模板变量。
// DisplayName 会同时映射到 name 和 {userType}_name，例如 customer_name
func (r Recipient) Variables() map[string]string {
	vars := make(map[string]string, len(r.Attributes)+3)
	for k, v := range r.Attributes {
		vars[k] = v
	}
	vars["user_id"] = r.ID
	if r.DisplayName != "" {
		vars["name"] = r.DisplayName
		if r.UserType != "" {
			vars[r.UserType.String()+"_name"] = r.DisplayName
		}
	}
	return vars
}

// Audience 解析后的接收者集合
type Audience struct {
	Recipients []Recipient
	// Unresolved 被丢弃的用户 ID，只在 broadcast 中出现
	Unresolved []string
}
