package reviewrepo

import (
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_live_order_user,where:is_deleted = false"`
	RestaurantID int64     `gorm:"not null;index"`
	UserID       int64     `gorm:"not null;index;uniqueIndex:idx_reviews_live_order_user,where:is_deleted = false"`
	Rating       int       `gorm:"type:int;not null"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index"`
	IsDeleted    bool      `gorm:"not null;default:false"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

// AppReviewDTO keeps at most one live row per user.
type AppReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_app_reviews_live_user,where:is_deleted = false"`
	Rating    int       `gorm:"type:int;not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
	IsDeleted bool      `gorm:"not null;default:false"`
}

func (AppReviewDTO) TableName() string {
	return "app_reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		RestaurantID: aggregate.RestaurantID(),
		UserID:       aggregate.UserID(),
		Rating:       aggregate.Rating(),
		Comment:      aggregate.Comment(),
		CreatedAt:    aggregate.CreatedAt().UTC(),
		IsDeleted:    aggregate.IsDeleted(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id,
		orderID,
		dto.RestaurantID,
		dto.UserID,
		dto.Rating,
		dto.Comment,
		dto.CreatedAt,
		dto.IsDeleted,
	)
}

func appReviewFromDomain(aggregate *review.AppReview) AppReviewDTO {
	return AppReviewDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt().UTC(),
		IsDeleted: aggregate.IsDeleted(),
	}
}
