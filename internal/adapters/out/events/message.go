// Package events publishes order status changes to a message broker.
// Every publisher sends the same JSON document, one message per event.
package events

import (
	"encoding/json"
	"time"

	"eda/internal/core/domain/model/order"
)

// StatusChangedType names the event on the wire.
const StatusChangedType = "order.status_changed"

// StatusChangedMessage is the JSON body of an order.status_changed event.
type StatusChangedMessage struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	UserID       int64     `json:"user_id"`
	RestaurantID int64     `json:"restaurant_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func newStatusChangedMessage(event order.StatusChangedEvent) StatusChangedMessage {
	return StatusChangedMessage{
		Type:         StatusChangedType,
		OrderID:      event.OrderID.String(),
		UserID:       event.UserID,
		RestaurantID: event.RestaurantID,
		From:         event.From.String(),
		To:           event.To.String(),
		OccurredAt:   event.OccurredAt,
	}
}

func encode(event order.StatusChangedEvent) ([]byte, error) {
	return json.Marshal(newStatusChangedMessage(event))
}
