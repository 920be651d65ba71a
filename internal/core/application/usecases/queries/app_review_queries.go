package queries

import (
	"errors"

	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrListAppReviewsQueryIsNotConstructed = errors.New(
		"ListAppReviewsQuery must be created via NewListAppReviewsQuery constructor",
	)
	ErrGetMyAppReviewQueryIsNotConstructed = errors.New(
		"GetMyAppReviewQuery must be created via NewGetMyAppReviewQuery constructor",
	)
)

// ListAppReviewsQuery is the public feed of app reviews.
type ListAppReviewsQuery struct {
	guard guard.ConstructorGuard
}

func NewListAppReviewsQuery() ListAppReviewsQuery {
	return ListAppReviewsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAppReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListAppReviewsQueryIsNotConstructed)
}

// GetMyAppReviewQuery reports whether a user already reviewed the app.
type GetMyAppReviewQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetMyAppReviewQuery(userID int64) (GetMyAppReviewQuery, error) {
	if userID <= 0 {
		return GetMyAppReviewQuery{}, errs.NewValueIsRequiredError("user_id")
	}
	return GetMyAppReviewQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyAppReviewQuery) Validate() error {
	return q.guard.Validate(ErrGetMyAppReviewQueryIsNotConstructed)
}

func (q GetMyAppReviewQuery) UserID() int64 { return q.userID }
