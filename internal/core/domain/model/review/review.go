// Package review provides the Review aggregate: a user's rating of a
// restaurant left for one of their orders.
package review

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is soft-deleted by moderation; deleted reviews do not count towards ratings
// and do not block a new review of the same order.
type Review struct {
	id           kernel.UUID
	orderID      kernel.UUID
	restaurantID int64
	userID       int64
	rating       int
	comment      string
	createdAt    time.Time
	isDeleted    bool

	isConstructed bool
}

func NewReview(
	id, orderID kernel.UUID,
	restaurantID, userID int64,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r := &Review{
		restaurantID:  restaurantID,
		userID:        userID,
		comment:       strings.TrimSpace(comment),
		createdAt:     createdAt,
		isConstructed: true,
	}

	var errList []error
	errList = append(errList, id.Validate(), orderID.Validate())
	if restaurantID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("restaurant_id", fmt.Errorf("%d is not greater than 0", restaurantID)))
	}
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("user_id", fmt.Errorf("%d is not greater than 0", userID)))
	}
	if rating < MinRating || rating > MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	r.id = id
	r.orderID = orderID
	r.rating = rating
	return r, nil
}

// RestoreReview rebuilds a review from storage, including its deleted flag.
func RestoreReview(
	id, orderID kernel.UUID,
	restaurantID, userID int64,
	rating int,
	comment string,
	createdAt time.Time,
	isDeleted bool,
) (*Review, error) {
	r, err := NewReview(id, orderID, restaurantID, userID, rating, comment, createdAt)
	if err != nil {
		return nil, err
	}
	r.isDeleted = isDeleted
	return r, nil
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID      { return r.id }
func (r *Review) OrderID() kernel.UUID { return r.orderID }
func (r *Review) RestaurantID() int64  { return r.restaurantID }
func (r *Review) UserID() int64        { return r.userID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) IsDeleted() bool      { return r.isDeleted }

// Delete hides the review. Deleting twice is a no-op.
func (r *Review) Delete() {
	r.isDeleted = true
}

// RoundRating rounds an average rating to one decimal place, 0 for no reviews.
func RoundRating(avg float64) float64 {
	if math.IsNaN(avg) || avg <= 0 {
		return 0
	}
	return math.Round(avg*10) / 10
}
