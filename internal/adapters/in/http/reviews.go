package http

import (
	"net/http"

	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/application/usecases/queries"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateReview handles POST /api/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	var body NewReview
	if err := ctx.Bind(&body); err != nil {
		return newError(http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order_id", err)
	}

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), orderID, UserID(ctx), body.Rating, body.Comment)
	if err != nil {
		return err
	}

	if err = s.createReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	found, err := s.reviewByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if !found.Exists {
		return errs.NewObjectNotFoundError("review", cmd.ReviewID().String())
	}

	return ctx.JSON(http.StatusCreated, toReview(*found.Review, s.location))
}

// GetReviewByOrder handles GET /api/reviews/by-order?order_id=.
func (s *Server) GetReviewByOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.QueryParam("order_id"))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order_id", err)
	}

	found, err := s.reviewByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	response := ReviewByOrder{Exists: found.Exists}
	if found.Review != nil {
		r := toReview(*found.Review, s.location)
		response.Review = &r
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantReviews handles GET /api/reviews/restaurant/{restaurant_id}. It is public.
func (s *Server) GetRestaurantReviews(ctx echo.Context) error {
	restaurantID, err := bindInt64Path(ctx, "restaurant_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetRestaurantReviewsQuery(restaurantID)
	if err != nil {
		return err
	}

	feed, err := s.getRestaurantReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := RestaurantReviews{
		Reviews:       make([]RestaurantReview, len(feed.Reviews)),
		AverageRating: feed.AverageRating,
		TotalReviews:  feed.TotalReviews,
	}
	for i, r := range feed.Reviews {
		response.Reviews[i] = RestaurantReview{
			Review:       toReview(r.ReviewResponse, s.location),
			OrderedItems: r.OrderedItems,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListReviews handles GET /api/admin/reviews.
func (s *Server) ListReviews(ctx echo.Context) error {
	restaurantID, err := bindOptionalInt64Query(ctx, "restaurant_id")
	if err != nil {
		return err
	}

	query, err := queries.NewListReviewsQuery(restaurantID)
	if err != nil {
		return err
	}

	reviews, err := s.listReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Review, len(reviews))
	for i, r := range reviews {
		response[i] = toReview(r, s.location)
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteReview handles DELETE /api/admin/reviews/{review_id}.
func (s *Server) DeleteReview(ctx echo.Context) error {
	reviewID, err := bindUUIDPath(ctx, "review_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteReviewCommand(reviewID)
	if err != nil {
		return err
	}

	if err = s.deleteReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Status{Status: "ok"})
}

func (s *Server) reviewByOrder(ctx echo.Context, orderID kernel.UUID) (queries.ReviewByOrderResponse, error) {
	query, err := queries.NewGetReviewByOrderQuery(orderID, UserID(ctx))
	if err != nil {
		return queries.ReviewByOrderResponse{}, err
	}
	return s.getReviewByOrderHandler.Handle(ctx.Request().Context(), query)
}
