package ports

import (
	"context"

	"eda/internal/core/domain/model/order"
)

// OrderEventPublisher delivers committed order status changes to subscribers.
// Publishing happens after the transaction commits; a failure never undoes the change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChangedEvent) error
}
