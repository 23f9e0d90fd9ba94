package sender

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notification-targeting/internal/domain"
)

const (
	metricsMaxAge        = 5 * time.Minute
	metricsP50Percentile = 0.5
	metricsP50Error      = 0.05
	metricsP90Percentile = 0.9
	metricsP90Error      = 0.01
	metricsP99Percentile = 0.99
	metricsP99Error      = 0.001

	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
)

var _ Dispatcher = (*MetricsDispatcher)(nil)

// MetricsDispatcher 统计每次分发的耗时、接收者结果和被取消的次数
type MetricsDispatcher struct {
	dispatcher         Dispatcher
	dispatchDuration   *prometheus.SummaryVec
	recipientCounter   *prometheus.CounterVec
	interruptedCounter *prometheus.CounterVec
}

func (m *MetricsDispatcher) Dispatch(ctx context.Context, req domain.NotificationRequest, recipients []domain.Recipient) domain.Receipt {
	start := time.Now()
	kind := req.Kind.String()

	receipt := m.dispatcher.Dispatch(ctx, req, recipients)

	m.dispatchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	m.recipientCounter.WithLabelValues(kind, outcomeSucceeded).Add(float64(receipt.Successful))
	m.recipientCounter.WithLabelValues(kind, outcomeFailed).Add(float64(receipt.Failed))
	if receipt.Interrupted {
		m.interruptedCounter.WithLabelValues(kind).Inc()
	}
	return receipt
}

// NewMetricsDispatcher reg 为 nil 时注册到 prometheus.DefaultRegisterer
func NewMetricsDispatcher(d Dispatcher, reg prometheus.Registerer) *MetricsDispatcher {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	dispatchDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "notification_dispatch_duration_seconds",
			Help: "一次分发的耗时统计（秒）",
			Objectives: map[float64]float64{
				metricsP50Percentile: metricsP50Error,
				metricsP90Percentile: metricsP90Error,
				metricsP99Percentile: metricsP99Error,
			},
			MaxAge: metricsMaxAge,
		},
		[]string{"kind"},
	)
	recipientCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_dispatch_recipients_total",
			Help: "按结果统计的接收者数量",
		},
		[]string{"kind", "outcome"},
	)
	interruptedCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_dispatch_interrupted_total",
			Help: "因取消而没有发完的分发次数",
		},
		[]string{"kind"},
	)
	reg.MustRegister(dispatchDuration, recipientCounter, interruptedCounter)

	return &MetricsDispatcher{
		dispatcher:         d,
		dispatchDuration:   dispatchDuration,
		recipientCounter:   recipientCounter,
		interruptedCounter: interruptedCounter,
	}
}
