// Package queries contains read-only use cases. Handlers read straight from
// the database with Raw SQL and return flat response structs, bypassing aggregates.
package queries

import (
	"context"
	"time"

	"eda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemResponse is one line of an order as shown to users and staff.
type OrderItemResponse struct {
	DishID int64
	Name   string
	Price  int
	Qty    int
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           kernel.UUID
	UserID       int64
	RestaurantID int64
	Items        []OrderItemResponse
	TotalPrice   int
	Address      string
	Comment      string
	Status       string
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	EtaMinutes   *int
}

const orderColumns = `
	id,
	user_id,
	restaurant_id,
	total_price,
	address,
	comment,
	status,
	created_at,
	accepted_at,
	eta_minutes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var (
		resp       OrderResponse
		id         uuid.UUID
		acceptedAt *time.Time
		etaMinutes *int
	)

	if err := row.Scan(
		&id,
		&resp.UserID,
		&resp.RestaurantID,
		&resp.TotalPrice,
		&resp.Address,
		&resp.Comment,
		&resp.Status,
		&resp.CreatedAt,
		&acceptedAt,
		&etaMinutes,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.AcceptedAt = acceptedAt
	resp.EtaMinutes = etaMinutes
	resp.Items = make([]OrderItemResponse, 0)
	return resp, nil
}

// attachItems loads the lines of every order in one query.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		id := o.ID.Bytes()
		index[id] = i
		ids = append(ids, id)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			dish_id,
			name,
			price,
			qty
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			item    OrderItemResponse
		)
		if err = rows.Scan(&orderID, &item.DishID, &item.Name, &item.Price, &item.Qty); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
