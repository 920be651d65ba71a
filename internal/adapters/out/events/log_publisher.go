package events

import (
	"context"
	"log/slog"

	"eda/internal/core/domain/model/order"
	"eda/internal/core/ports"
)

var _ ports.OrderEventPublisher = (*LogPublisher)(nil)

// LogPublisher writes events to the log. It is the default when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "LogPublisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.StatusChangedEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, StatusChangedType,
			"order_id", event.OrderID.String(),
			"restaurant_id", event.RestaurantID,
			"from", event.From.String(),
			"to", event.To.String(),
		)
	}
	return nil
}
