package notification

import (
	"context"
	"time"

	"nyumba/config"
	"nyumba/infras/kafka"
	"nyumba/infras/otel"
	"nyumba/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer drains the booking topic and turns events into emails. Delivery
// is at-least-once; a mail that still fails after the retry budget is
// logged and dropped rather than blocking the stream.
type Consumer struct {
	client kafka.Client
	mailer Mailer
	cfg    *config.Config
	otel   otel.Otel
	retry  RetryPolicy
}

func NewConsumer(client kafka.Client, mailer Mailer, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
		retry:  NewRetryPolicy(cfg.Notification.MaxAttempts, time.Duration(cfg.Notification.BackoffSeconds)*time.Second),
	}
}

func (c *Consumer) Run(ctx context.Context) {
	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.BookingTopic, func(msg kafkaGo.Message) {
		c.handle(ctx, msg)
	})
}

func (c *Consumer) handle(ctx context.Context, msg kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()

	event, err := kafka.DecodeKafkaMessage[Event](msg)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode booking event")

		return
	}

	scope.SetAttribute("event.type", event.Type)
	scope.SetAttribute("booking.id", event.BookingID)

	if err := c.Deliver(ctx, event); err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("bookingID", event.BookingID).
			Str("eventType", event.Type).
			Msg("failed to deliver booking notification")
	}
}

// Deliver sends the email for one event, retrying per the policy. Request
// events go to the hotel inbox; lifecycle events go to the guest.
func (c *Consumer) Deliver(ctx context.Context, event Event) error {
	to := event.Email
	if event.Type == EventBookingRequested {
		to = c.cfg.SMTP.AdminEmail
	}

	return c.retry.Do(ctx, func() error {
		return c.mailer.Send(ctx, to, Subject(event), Body(event))
	})
}
