package queries

import (
	"context"
	"fmt"
	"strings"

	"eda/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantReviewResponse adds the reviewed dishes, rendered as "Borscht x2, Tea x1".
type RestaurantReviewResponse struct {
	ReviewResponse
	OrderedItems string
}

type RestaurantReviewsResponse struct {
	Reviews       []RestaurantReviewResponse
	AverageRating float64
	TotalReviews  int
}

type GetRestaurantReviewsQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantReviewsQueryHandler(db *gorm.DB) GetRestaurantReviewsQueryHandler {
	return GetRestaurantReviewsQueryHandler{db: db}
}

func (h GetRestaurantReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantReviewsQuery,
) (RestaurantReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantReviewsResponse{}, err
	}

	reviews, err := listReviews(ctx, h.db, query.RestaurantID())
	if err != nil {
		return RestaurantReviewsResponse{}, err
	}

	items, err := orderedItems(ctx, h.db, reviews)
	if err != nil {
		return RestaurantReviewsResponse{}, err
	}

	resp := RestaurantReviewsResponse{
		Reviews:      make([]RestaurantReviewResponse, 0, len(reviews)),
		TotalReviews: len(reviews),
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
		resp.Reviews = append(resp.Reviews, RestaurantReviewResponse{
			ReviewResponse: r,
			OrderedItems:   items[r.OrderID.Bytes()],
		})
	}
	if len(reviews) > 0 {
		resp.AverageRating = review.RoundRating(float64(total) / float64(len(reviews)))
	}

	return resp, nil
}

func orderedItems(ctx context.Context, db *gorm.DB, reviews []ReviewResponse) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string, len(reviews))
	if len(reviews) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.OrderID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			qty
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[uuid.UUID][]string, len(ids))
	for rows.Next() {
		var (
			orderID uuid.UUID
			name    string
			qty     int
		)
		if err = rows.Scan(&orderID, &name, &qty); err != nil {
			return nil, err
		}
		lines[orderID] = append(lines[orderID], fmt.Sprintf("%s x%d", name, qty))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for id, l := range lines {
		result[id] = strings.Join(l, ", ")
	}
	return result, nil
}
