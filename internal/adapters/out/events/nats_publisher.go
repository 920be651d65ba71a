package events

import (
	"context"
	"errors"
	"fmt"

	"eda/internal/core/domain/model/order"
	"eda/internal/core/ports"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var _ ports.OrderEventPublisher = (*NATSPublisher)(nil)

type msgPublisher interface {
	PublishMsg(msg *nats.Msg) error
}

// NATSPublisher sends each event to one subject with trace context in the headers.
type NATSPublisher struct {
	conn    msgPublisher
	subject string
}

func NewNATSPublisher(conn msgPublisher, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject}
}

// ConnectNATS dials the server; the caller drains the connection on shutdown.
func ConnectNATS(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name(name), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect to nats %s: %w", url, err)
	}
	return conn, nil
}

// Publish sends every event and returns the joined failures.
func (p *NATSPublisher) Publish(ctx context.Context, events ...order.StatusChangedEvent) error {
	propagator := otel.GetTextMapPropagator()

	var errList []error
	for _, event := range events {
		data, err := encode(event)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		msg := &nats.Msg{
			Subject: p.subject,
			Header:  nats.Header{},
			Data:    data,
		}
		propagator.Inject(ctx, propagation.HeaderCarrier(msg.Header))

		if err = p.conn.PublishMsg(msg); err != nil {
			errList = append(errList, fmt.Errorf("publish order %s: %w", event.OrderID.String(), err))
		}
	}

	return errors.Join(errList...)
}
