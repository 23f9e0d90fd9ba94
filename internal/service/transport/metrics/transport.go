package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/service/transport"
)

const (
	median = 0.5
	p90    = 0.9
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p99Error    = 0.001

	maxAgeDuration = 5 * time.Minute

	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

var _ transport.Transport = (*Transport)(nil)

// Transport 统计发送量、成功失败数和耗时
type Transport struct {
	transport           transport.Transport
	name                string
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
	sendDurationSummary *prometheus.SummaryVec
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	start := time.Now()
	t.sendCounter.WithLabelValues(t.name, msg.Type).Inc()

	err := t.transport.Send(ctx, msg)

	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	t.sendStatusCounter.WithLabelValues(t.name, msg.Type, status).Inc()
	t.sendDurationSummary.WithLabelValues(t.name, msg.Type, status).Observe(time.Since(start).Seconds())
	return err
}

// NewTransport 指标注册到 reg 上，reg 为 nil 时注册到 prometheus.DefaultRegisterer
func NewTransport(name string, t transport.Transport, reg prometheus.Registerer) *Transport {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_transport_send_total",
			Help: "推送通道发送总数",
		},
		[]string{"transport", "type"},
	)
	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_transport_send_status_total",
			Help: "推送通道发送结果统计",
		},
		[]string{"transport", "type", "status"},
	)
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "notification_transport_send_duration_seconds",
			Help: "推送通道发送耗时（秒）",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"transport", "type", "status"},
	)
	reg.MustRegister(sendCounter, sendStatusCounter, sendDurationSummary)

	return &Transport{
		transport:           t,
		name:                name,
		sendCounter:         sendCounter,
		sendStatusCounter:   sendStatusCounter,
		sendDurationSummary: sendDurationSummary,
	}
}
