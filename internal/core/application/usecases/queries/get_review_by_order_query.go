package queries

import (
	"errors"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrGetReviewByOrderQueryIsNotConstructed = errors.New(
		"GetReviewByOrderQuery must be created via NewGetReviewByOrderQuery constructor",
	)
)

// GetReviewByOrderQuery reports whether a user already reviewed an order.
type GetReviewByOrderQuery struct {
	orderID kernel.UUID
	userID  int64

	guard guard.ConstructorGuard
}

func NewGetReviewByOrderQuery(orderID kernel.UUID, userID int64) (GetReviewByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetReviewByOrderQuery{}, err
	}
	if userID <= 0 {
		return GetReviewByOrderQuery{}, errs.NewValueIsRequiredError("user_id")
	}
	return GetReviewByOrderQuery{orderID: orderID, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReviewByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewByOrderQueryIsNotConstructed)
}

func (q GetReviewByOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetReviewByOrderQuery) UserID() int64        { return q.userID }
