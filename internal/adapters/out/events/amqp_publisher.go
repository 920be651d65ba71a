package events

import (
	"context"
	"errors"
	"fmt"

	"eda/internal/core/domain/model/order"
	"eda/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var _ ports.OrderEventPublisher = (*AMQPPublisher)(nil)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPPublisher sends persistent messages to a topic exchange.
type AMQPPublisher struct {
	ch         amqpChannel
	exchange   string
	routingKey string
}

func NewAMQPPublisher(ch amqpChannel, exchange, routingKey string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange, routingKey: routingKey}
}

// AMQPConnection owns the connection and channel behind an AMQPPublisher.
type AMQPConnection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialAMQP connects and declares the durable topic exchange events go to.
func DialAMQP(url, exchange string) (*AMQPConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPConnection{conn: conn, ch: ch}, nil
}

func (c *AMQPConnection) Channel() *amqp.Channel {
	return c.ch
}

func (c *AMQPConnection) IsClosed() bool {
	return c.conn.IsClosed()
}

func (c *AMQPConnection) Close() error {
	return errors.Join(c.ch.Close(), c.conn.Close())
}

func (p *AMQPPublisher) Publish(ctx context.Context, events ...order.StatusChangedEvent) error {
	propagator := otel.GetTextMapPropagator()

	var errList []error
	for _, event := range events {
		body, err := encode(event)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		carrier := propagation.MapCarrier{}
		propagator.Inject(ctx, carrier)
		headers := amqp.Table{}
		for k, v := range carrier {
			headers[k] = v
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
			Headers:      headers,
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt.UTC(),
			Type:         StatusChangedType,
			MessageId:    event.OrderID.String() + ":" + event.To.String(),
			Body:         body,
		})
		if err != nil {
			errList = append(errList, fmt.Errorf("publish order %s: %w", event.OrderID.String(), err))
		}
	}

	return errors.Join(errList...)
}
