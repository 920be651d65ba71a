package commands

import (
	"errors"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var ErrCreateAppReviewCommandIsNotConstructed = errors.New(
	"CreateAppReviewCommand must be created via NewCreateAppReviewCommand constructor",
)

// CreateAppReviewCommand rates the app on behalf of a user.
type CreateAppReviewCommand struct {
	reviewID kernel.UUID
	userID   int64
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

func NewCreateAppReviewCommand(reviewID kernel.UUID, userID int64, rating int, comment string) (CreateAppReviewCommand, error) {
	var errList []error
	errList = append(errList, reviewID.Validate())
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("user_id"))
	}
	if rating < review.MinRating || rating > review.MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateAppReviewCommand{}, err
	}

	return CreateAppReviewCommand{
		reviewID: reviewID,
		userID:   userID,
		rating:   rating,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAppReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppReviewCommandIsNotConstructed)
}

func (c CreateAppReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
func (c CreateAppReviewCommand) UserID() int64         { return c.userID }
func (c CreateAppReviewCommand) Rating() int           { return c.rating }
func (c CreateAppReviewCommand) Comment() string       { return c.comment }
