package ports

import (
	"context"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists rating, comment and the deleted flag.
	Update(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review by id, deleted or not.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// ExistsForOrder reports whether userID already has a non-deleted review of orderID.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID, userID int64) (bool, error)
}
