package ioc

import (
	"time"

	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"notification-targeting/internal/service/transport"
	"notification-targeting/internal/service/transport/breaker"
	"notification-targeting/internal/service/transport/console"
	"notification-targeting/internal/service/transport/metrics"
	"notification-targeting/internal/service/transport/tracing"
)

const consoleTransportName = "console"

// InitTransport 从外到内：指标、链路追踪、熔断、真实通道。任何一层都不重试
func InitTransport() transport.Transport {
	type Config struct {
		Success float64       `yaml:"success"`
		Request int64         `yaml:"request"`
		Window  time.Duration `yaml:"window"`
		Bucket  int           `yaml:"bucket"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("breaker", &cfg); err != nil {
		panic(err)
	}

	opts := make([]sre.Option, 0, 4)
	if cfg.Success > 0 {
		opts = append(opts, sre.WithSuccess(cfg.Success))
	}
	if cfg.Request > 0 {
		opts = append(opts, sre.WithRequest(cfg.Request))
	}
	if cfg.Window > 0 {
		opts = append(opts, sre.WithWindow(cfg.Window))
	}
	if cfg.Bucket > 0 {
		opts = append(opts, sre.WithBucket(cfg.Bucket))
	}

	var t transport.Transport = console.NewTransport()
	t = breaker.NewTransport(t, sre.NewBreaker(opts...))
	t = tracing.NewTransport(t, consoleTransportName)
	return metrics.NewTransport(consoleTransportName, t, prometheus.DefaultRegisterer)
}
