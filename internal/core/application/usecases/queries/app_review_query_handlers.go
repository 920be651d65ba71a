package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppReviewResponse is the read model of an app review.
type AppReviewResponse struct {
	ID        kernel.UUID
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// MyAppReviewResponse carries a nil Review when Exists is false.
type MyAppReviewResponse struct {
	Exists bool
	Review *AppReviewResponse
}

const appReviewColumns = `
	id,
	user_id,
	rating,
	comment,
	created_at`

func scanAppReview(row rowScanner) (AppReviewResponse, error) {
	var (
		resp AppReviewResponse
		id   uuid.UUID
	)

	if err := row.Scan(&id, &resp.UserID, &resp.Rating, &resp.Comment, &resp.CreatedAt); err != nil {
		return AppReviewResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AppReviewResponse{}, err
	}

	return resp, nil
}

type ListAppReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListAppReviewsQueryHandler(db *gorm.DB) ListAppReviewsQueryHandler {
	return ListAppReviewsQueryHandler{db: db}
}

// Handle lists non-deleted app reviews, newest first.
func (h ListAppReviewsQueryHandler) Handle(ctx context.Context, query ListAppReviewsQuery) ([]AppReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+appReviewColumns+`
		FROM app_reviews
		WHERE is_deleted = ?
		ORDER BY created_at DESC, id
	`, false).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]AppReviewResponse, 0)
	for rows.Next() {
		r, scanErr := scanAppReview(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}

type GetMyAppReviewQueryHandler struct {
	db *gorm.DB
}

func NewGetMyAppReviewQueryHandler(db *gorm.DB) GetMyAppReviewQueryHandler {
	return GetMyAppReviewQueryHandler{db: db}
}

func (h GetMyAppReviewQueryHandler) Handle(ctx context.Context, query GetMyAppReviewQuery) (MyAppReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return MyAppReviewResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+appReviewColumns+`
		FROM app_reviews
		WHERE user_id = ? AND is_deleted = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.UserID(), false).Row()

	resp, err := scanAppReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MyAppReviewResponse{Exists: false}, nil
	}
	if err != nil {
		return MyAppReviewResponse{}, err
	}

	return MyAppReviewResponse{Exists: true, Review: &resp}, nil
}
