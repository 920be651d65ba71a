package queries

import (
	"errors"
	"fmt"

	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery aggregates orders for today and the current month.
// restaurantID 0 means every restaurant.
type GetOrderStatsQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery(restaurantID int64) (GetOrderStatsQuery, error) {
	if restaurantID < 0 {
		return GetOrderStatsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"restaurant_id", fmt.Errorf("%d is negative", restaurantID),
		)
	}
	return GetOrderStatsQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) RestaurantID() int64 {
	return q.restaurantID
}
