package reviewrepo

import (
	"context"

	"eda/internal/core/domain/model/review"

	"gorm.io/gorm"
)

type GormAppReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAppReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormAppReviewRepository {
	return &GormAppReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAppReviewRepository) Add(ctx context.Context, aggregate *review.AppReview) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := appReviewFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAppReviewRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&AppReviewDTO{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
