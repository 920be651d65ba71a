package queries

import (
	"errors"
	"fmt"

	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrGetRestaurantReviewsQueryIsNotConstructed = errors.New(
		"GetRestaurantReviewsQuery must be created via NewGetRestaurantReviewsQuery constructor",
	)
)

// GetRestaurantReviewsQuery is the public review feed of a restaurant.
type GetRestaurantReviewsQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

func NewGetRestaurantReviewsQuery(restaurantID int64) (GetRestaurantReviewsQuery, error) {
	if restaurantID <= 0 {
		return GetRestaurantReviewsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"restaurant_id", fmt.Errorf("%d is not greater than 0", restaurantID),
		)
	}
	return GetRestaurantReviewsQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantReviewsQueryIsNotConstructed)
}

func (q GetRestaurantReviewsQuery) RestaurantID() int64 {
	return q.restaurantID
}
