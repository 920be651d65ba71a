package order

import (
	"time"

	"eda/internal/core/domain/model/kernel"
)

// StatusChangedEvent is emitted after a status change has been committed.
type StatusChangedEvent struct {
	OrderID      kernel.UUID
	UserID       int64
	RestaurantID int64
	From         Status
	To           Status
	OccurredAt   time.Time
}

// NewStatusChangedEvent captures o's current status as the target of a change from from.
func NewStatusChangedEvent(o *Order, from Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:      o.ID(),
		UserID:       o.UserID(),
		RestaurantID: o.RestaurantID(),
		From:         from,
		To:           o.Status(),
		OccurredAt:   at,
	}
}
