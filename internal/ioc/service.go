package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/pkg/idgenerator"
	"notification-targeting/internal/service/sender"
	"notification-targeting/internal/service/transport"
)

func InitDispatchConfig() domain.DispatchConfig {
	cfg := domain.DefaultDispatchConfig()
	if err := econf.UnmarshalKey("notification.dispatch", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitDispatcher(t transport.Transport, cfg domain.DispatchConfig) sender.Dispatcher {
	return sender.NewMetricsDispatcher(sender.NewDispatcher(t, cfg), prometheus.DefaultRegisterer)
}

func InitIDGenerator() idgenerator.Generator {
	type Config struct {
		MachineID uint16 `yaml:"machineID"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("idgen", &cfg); err != nil {
		panic(err)
	}
	// 固定的起始时间，保证重启后生成的ID仍然递增
	startTime := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	g, err := idgenerator.NewSonyflake(startTime, cfg.MachineID)
	if err != nil {
		panic(err)
	}
	return g
}
