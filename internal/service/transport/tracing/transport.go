package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/service/transport"
)

var _ transport.Transport = (*Transport)(nil)

// Transport 为推送通道添加链路追踪
type Transport struct {
	transport transport.Transport
	tracer    trace.Tracer
	name      string
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	ctx, span := t.tracer.Start(ctx, "Transport.Send",
		trace.WithAttributes(
			attribute.String("transport.name", t.name),
			attribute.String("notification.recipientId", msg.RecipientID),
			attribute.String("notification.type", msg.Type),
		))
	defer span.End()

	err := t.transport.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// NewTransport name 是通道名，例如 console、kafka
func NewTransport(t transport.Transport, name string) *Transport {
	return &Transport{
		transport: t,
		name:      name,
		tracer:    otel.Tracer("notification-targeting/transport"),
	}
}
