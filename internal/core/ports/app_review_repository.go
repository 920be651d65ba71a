package ports

import (
	"context"

	"eda/internal/core/domain/model/review"
)

// AppReviewRepository persists reviews of the app itself.
type AppReviewRepository interface {
	Add(ctx context.Context, aggregate *review.AppReview) error

	// ExistsForUser reports whether userID already has a non-deleted app review.
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
}
