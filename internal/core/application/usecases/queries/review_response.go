package queries

import (
	"time"

	"eda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ReviewResponse is the read model of a review.
type ReviewResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	RestaurantID int64
	UserID       int64
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

const reviewColumns = `
	id,
	order_id,
	restaurant_id,
	user_id,
	rating,
	comment,
	created_at`

func scanReview(row rowScanner) (ReviewResponse, error) {
	var (
		resp    ReviewResponse
		id      uuid.UUID
		orderID uuid.UUID
	)

	if err := row.Scan(
		&id,
		&orderID,
		&resp.RestaurantID,
		&resp.UserID,
		&resp.Rating,
		&resp.Comment,
		&resp.CreatedAt,
	); err != nil {
		return ReviewResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ReviewResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return ReviewResponse{}, err
	}

	return resp, nil
}
