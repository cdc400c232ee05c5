package notification

import (
	"context"
	"encoding/json"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/logging"
	dn "passreset/internal/core/domain/notification"
	"passreset/internal/rabbitmq"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes notification messages to a durable queue for an
// external mail worker.
type RabbitMQ struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (g *RabbitMQ) Send(ctx context.Context, m dn.Message) error {
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}
	err = g.channel.PublishWithContext(ctx, "", g.queue, false, false, amqp091.Publishing{
		MessageId:    uuid.New().String(),
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, g.log, err)
		return err
	}
	g.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", g.queue),
		logging.Entry("to", m.To),
	)
	return nil
}
