package queries

import (
	"context"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// StatsBucket is the summary of orders created in [From, To).
type StatsBucket struct {
	From      time.Time
	To        time.Time
	Orders    int64
	Sum       int64
	Cancelled int64
	Modified  int64
}

type OrderStatsResponse struct {
	Today StatsBucket
	Month StatsBucket
}

type GetOrderStatsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOrderStatsQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db, clock: clock}
}

// Handle cuts days and months at midnight of the clock's zone.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	now := h.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := h.bucket(ctx, query.RestaurantID(), dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return OrderStatsResponse{}, err
	}

	month, err := h.bucket(ctx, query.RestaurantID(), monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return OrderStatsResponse{}, err
	}

	return OrderStatsResponse{Today: today, Month: month}, nil
}

func (h GetOrderStatsQueryHandler) bucket(ctx context.Context, restaurantID int64, from, to time.Time) (StatsBucket, error) {
	sql := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ?`
	args := []any{order.Cancelled.String(), order.Modified.String(), from.UTC(), to.UTC()}

	if restaurantID > 0 {
		sql += " AND restaurant_id = ?"
		args = append(args, restaurantID)
	}

	bucket := StatsBucket{From: from, To: to}
	err := h.db.WithContext(ctx).Raw(sql, args...).Row().Scan(
		&bucket.Orders,
		&bucket.Sum,
		&bucket.Cancelled,
		&bucket.Modified,
	)
	if err != nil {
		return StatsBucket{}, err
	}

	return bucket, nil
}
