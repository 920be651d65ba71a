package commands

import (
	"context"
	"log/slog"

	"eda/internal/core/domain/model/order"
	"eda/internal/core/ports"
)

// eventSink publishes committed status changes. A nil publisher disables publishing.
type eventSink struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func newEventSink(publisher ports.OrderEventPublisher, logger *slog.Logger) eventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return eventSink{publisher: publisher, logger: logger}
}

// publish runs after commit, so failures are logged and dropped.
func (s eventSink) publish(ctx context.Context, events ...order.StatusChangedEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.WarnContext(ctx, "order events were not published",
			slog.Int("count", len(events)),
			slog.Any("err", err),
		)
	}
}
