// Package ports defines the contracts between the application core and its
// adapters: persistence, transactions and outbound events.
package ports

import (
	"context"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists status and timing of an existing order only if
	// the stored status still equals from. Items are written once by Add.
	// It reports false, without error, when another writer changed the row first.
	//
	// Example:
	//   ok, err := repo.UpdateStatusFrom(ctx, o, order.Accepted)
	//   if err == nil && !ok {
	//       // the order was cancelled or modified concurrently, skip it
	//   }
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, from order.Status) (bool, error)

	// Get retrieves an order with its items.
	// Returns errs.ErrObjectNotFound when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInAcceptedStatus returns every order whose status is accepted at scan time.
	// The result is not paginated. Rows that cannot be restored into an aggregate
	// are reported in unreadable instead of failing the scan.
	GetAllInAcceptedStatus(ctx context.Context) (orders []*order.Order, unreadable []UnreadableOrder, err error)
}

// UnreadableOrder is a stored order row that failed domain validation on load.
type UnreadableOrder struct {
	ID  string
	Err error
}
