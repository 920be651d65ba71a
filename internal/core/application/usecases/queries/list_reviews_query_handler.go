package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListReviewsQueryHandler(db *gorm.DB) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db}
}

// Handle lists non-deleted reviews, newest first.
func (h ListReviewsQueryHandler) Handle(ctx context.Context, query ListReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return listReviews(ctx, h.db, query.RestaurantID())
}

func listReviews(ctx context.Context, db *gorm.DB, restaurantID int64) ([]ReviewResponse, error) {
	sql := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE is_deleted = ?`
	args := []any{false}

	if restaurantID > 0 {
		sql += " AND restaurant_id = ?"
		args = append(args, restaurantID)
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		r, scanErr := scanReview(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}
