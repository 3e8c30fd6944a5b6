package notification

import (
	"context"

	"nyumba/config"
	"nyumba/infras/kafka"
	"nyumba/infras/otel"
	"nyumba/shared/constant"
)

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Publish keys messages by booking id so events for the same booking stay
// ordered within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("event.type", event.Type)
	scope.SetAttribute("booking.id", event.BookingID)

	return p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
}
