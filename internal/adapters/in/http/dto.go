package http

import (
	"time"

	"eda/internal/core/application/usecases/queries"
)

type OrderItem struct {
	DishID int64  `json:"dish_id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Qty    int    `json:"qty"`
}

type NewOrder struct {
	RestaurantID int64       `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
	Address      string      `json:"address"`
	Comment      string      `json:"comment"`
}

type AcceptOrder struct {
	EtaMinutes int `json:"eta_minutes"`
}

type Order struct {
	ID           string      `json:"id"`
	UserID       int64       `json:"user_id"`
	RestaurantID int64       `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
	TotalPrice   int         `json:"total_price"`
	Address      string      `json:"address"`
	Comment      string      `json:"comment"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	AcceptedAt   *time.Time  `json:"accepted_at"`
	EtaMinutes   *int        `json:"eta_minutes"`
}

type NewReview struct {
	OrderID string `json:"order_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Review struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	RestaurantID int64     `json:"restaurant_id"`
	UserID       int64     `json:"user_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	IsDeleted    bool      `json:"is_deleted"`
}

type ReviewByOrder struct {
	Exists bool    `json:"exists"`
	Review *Review `json:"review"`
}

type RestaurantReview struct {
	Review
	OrderedItems string `json:"ordered_items"`
}

type RestaurantReviews struct {
	Reviews       []RestaurantReview `json:"reviews"`
	AverageRating float64            `json:"average_rating"`
	TotalReviews  int                `json:"total_reviews"`
}

type NewAppReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type AppReview struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type MyAppReview struct {
	Exists bool       `json:"exists"`
	Review *AppReview `json:"review"`
}

type StatsBucket struct {
	Orders    int64 `json:"orders"`
	Sum       int64 `json:"sum"`
	Cancelled int64 `json:"cancelled"`
	Modified  int64 `json:"modified"`
}

type Stats struct {
	Today StatsBucket `json:"today"`
	Month StatsBucket `json:"month"`
}

type Status struct {
	Status string `json:"status"`
}

// toOrder renders timestamps in loc.
func toOrder(o queries.OrderResponse, loc *time.Location) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{DishID: item.DishID, Name: item.Name, Price: item.Price, Qty: item.Qty}
	}

	var acceptedAt *time.Time
	if o.AcceptedAt != nil {
		at := o.AcceptedAt.In(loc)
		acceptedAt = &at
	}

	return Order{
		ID:           o.ID.String(),
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		Items:        items,
		TotalPrice:   o.TotalPrice,
		Address:      o.Address,
		Comment:      o.Comment,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt.In(loc),
		AcceptedAt:   acceptedAt,
		EtaMinutes:   o.EtaMinutes,
	}
}

func toReview(r queries.ReviewResponse, loc *time.Location) Review {
	return Review{
		ID:           r.ID.String(),
		OrderID:      r.OrderID.String(),
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt.In(loc),
	}
}

func toAppReview(r queries.AppReviewResponse, loc *time.Location) AppReview {
	return AppReview{
		ID:        r.ID.String(),
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.In(loc),
	}
}

func toStatsBucket(b queries.StatsBucket) StatsBucket {
	return StatsBucket{Orders: b.Orders, Sum: b.Sum, Cancelled: b.Cancelled, Modified: b.Modified}
}
