package review

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"
)

var ErrAppReviewIsNotConstructed = errors.New("AppReview must be created via NewAppReview constructor")

// AppReview is a user's rating of the mini-app itself. A user holds at most one
// live app review.
type AppReview struct {
	id        kernel.UUID
	userID    int64
	rating    int
	comment   string
	createdAt time.Time
	isDeleted bool

	isConstructed bool
}

func NewAppReview(id kernel.UUID, userID int64, rating int, comment string, createdAt time.Time) (*AppReview, error) {
	var errList []error
	errList = append(errList, id.Validate())
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("user_id", fmt.Errorf("%d is not greater than 0", userID)))
	}
	if rating < MinRating || rating > MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &AppReview{
		id:            id,
		userID:        userID,
		rating:        rating,
		comment:       strings.TrimSpace(comment),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (r *AppReview) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrAppReviewIsNotConstructed
	}
	return nil
}

func (r *AppReview) ID() kernel.UUID      { return r.id }
func (r *AppReview) UserID() int64        { return r.userID }
func (r *AppReview) Rating() int          { return r.rating }
func (r *AppReview) Comment() string      { return r.comment }
func (r *AppReview) CreatedAt() time.Time { return r.createdAt }
func (r *AppReview) IsDeleted() bool      { return r.isDeleted }
