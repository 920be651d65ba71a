package queries

import (
	"errors"
	"fmt"

	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrListReviewsQueryIsNotConstructed = errors.New(
		"ListReviewsQuery must be created via NewListReviewsQuery constructor",
	)
)

// ListReviewsQuery is the moderation list. restaurantID 0 means every restaurant.
type ListReviewsQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

func NewListReviewsQuery(restaurantID int64) (ListReviewsQuery, error) {
	if restaurantID < 0 {
		return ListReviewsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"restaurant_id", fmt.Errorf("%d is negative", restaurantID),
		)
	}
	return ListReviewsQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

func (q ListReviewsQuery) RestaurantID() int64 {
	return q.restaurantID
}
