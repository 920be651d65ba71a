package services

import (
	"time"

	"eda/internal/core/domain/model/order"
)

// DeliveryDispatcher decides which accepted orders have waited out their ETA and
// marks them delivered.
//
// Business rules:
//   - An order is due at acceptedAt + max(etaMinutes, minWindow)
//   - Orders without acceptedAt or etaMinutes are skipped, never failed
//   - An unconstructed order is skipped; it never blocks the rest of the batch
//   - All orders of one batch are judged against the same now
//
// Example usage:
//
//	dispatcher := services.NewDeliveryDispatcher(order.MinDeliveryWindow)
//	delivered := dispatcher.Dispatch(acceptedOrders, clock.Now())
//	for _, o := range delivered {
//	    // persist o
//	}
type DeliveryDispatcher struct {
	minWindow time.Duration
}

// NewDeliveryDispatcher creates a dispatcher with the given floor; a non-positive
// floor falls back to order.MinDeliveryWindow.
func NewDeliveryDispatcher(minWindow time.Duration) DeliveryDispatcher {
	if minWindow <= 0 {
		minWindow = order.MinDeliveryWindow
	}
	return DeliveryDispatcher{minWindow: minWindow}
}

// MinWindow returns the floor applied to every ETA.
func (d DeliveryDispatcher) MinWindow() time.Duration {
	if d.minWindow <= 0 {
		return order.MinDeliveryWindow
	}
	return d.minWindow
}

// Dispatch delivers every due order in orders and returns them in input order.
// Each order is judged on its own.
func (d DeliveryDispatcher) Dispatch(orders []*order.Order, now time.Time) []*order.Order {
	delivered := make([]*order.Order, 0)
	for _, o := range orders {
		if o.Validate() != nil || !o.IsDeliveryDue(now, d.MinWindow()) {
			continue
		}
		if err := o.Deliver(); err != nil {
			continue
		}
		delivered = append(delivered, o)
	}

	return delivered
}
