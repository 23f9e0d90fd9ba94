package domain

import "time"

// Budget 渠道字符预算，<= 0 表示不限制
type Budget struct {
	TitleMaxChars int `yaml:"titleMaxChars"`
	BodyMaxChars  int `yaml:"bodyMaxChars"`
}

// DispatchConfig 发送器配置
type DispatchConfig struct {
	Budget      Budget        `yaml:"budget"`
	Concurrency int           `yaml:"concurrency"` // 单个请求内并发发送上限
	SendTimeout time.Duration `yaml:"sendTimeout"` // 单个接收者的发送超时
}

const (
	DefaultConcurrency   = 8
	DefaultSendTimeout   = 3 * time.Second
	DefaultTitleMaxChars = 40
	DefaultBodyMaxChars  = 150
)

// DefaultDispatchConfig 与管理后台现有的输入限制保持一致
func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		Budget: Budget{
			TitleMaxChars: DefaultTitleMaxChars,
			BodyMaxChars:  DefaultBodyMaxChars,
		},
		Concurrency: DefaultConcurrency,
		SendTimeout: DefaultSendTimeout,
	}
}
