package commands

import (
	"errors"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrCreateReviewCommandIsNotConstructed = errors.New(
		"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
	)
	ErrDeleteReviewCommandIsNotConstructed = errors.New(
		"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
	)
)

// CreateReviewCommand rates an order on behalf of its owner.
type CreateReviewCommand struct {
	reviewID kernel.UUID
	orderID  kernel.UUID
	userID   int64
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	reviewID, orderID kernel.UUID,
	userID int64,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	var errList []error
	errList = append(errList, reviewID.Validate(), orderID.Validate())
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("user_id"))
	}
	if rating < review.MinRating || rating > review.MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateReviewCommand{}, err
	}

	return CreateReviewCommand{
		reviewID: reviewID,
		orderID:  orderID,
		userID:   userID,
		rating:   rating,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
func (c CreateReviewCommand) OrderID() kernel.UUID  { return c.orderID }
func (c CreateReviewCommand) UserID() int64         { return c.userID }
func (c CreateReviewCommand) Rating() int           { return c.rating }
func (c CreateReviewCommand) Comment() string       { return c.comment }

// DeleteReviewCommand hides a review from public listings.
type DeleteReviewCommand struct {
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReviewCommand(reviewID kernel.UUID) (DeleteReviewCommand, error) {
	if err := reviewID.Validate(); err != nil {
		return DeleteReviewCommand{}, err
	}
	return DeleteReviewCommand{reviewID: reviewID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

func (c DeleteReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
