package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// ReviewByOrderResponse carries a nil Review when Exists is false.
type ReviewByOrderResponse struct {
	Exists bool
	Review *ReviewResponse
}

type GetReviewByOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetReviewByOrderQueryHandler(db *gorm.DB) GetReviewByOrderQueryHandler {
	return GetReviewByOrderQueryHandler{db: db}
}

func (h GetReviewByOrderQueryHandler) Handle(ctx context.Context, query GetReviewByOrderQuery) (ReviewByOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewByOrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE order_id = ? AND user_id = ? AND is_deleted = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.OrderID().Bytes(), query.UserID(), false).Row()

	resp, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ReviewByOrderResponse{Exists: false}, nil
	}
	if err != nil {
		return ReviewByOrderResponse{}, err
	}

	return ReviewByOrderResponse{Exists: true, Review: &resp}, nil
}
