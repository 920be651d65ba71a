package reviewrepo

import (
	"context"
	"errors"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
	"eda/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"rating":     dto.Rating,
			"comment":    dto.Comment,
			"is_deleted": dto.IsDeleted,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormReviewRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("order_id = ? AND user_id = ? AND is_deleted = ?", orderID.Bytes(), userID, false).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// translateDuplicate maps a unique live-review index violation to the conflict
// a concurrent writer would have seen from the existence check.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("already_reviewed", err)
	}
	return err
}
