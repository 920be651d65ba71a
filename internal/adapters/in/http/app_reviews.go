package http

import (
	"net/http"

	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/application/usecases/queries"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListAppReviews handles GET /api/app-reviews. It is public.
func (s *Server) ListAppReviews(ctx echo.Context) error {
	reviews, err := s.listAppReviewsHandler.Handle(ctx.Request().Context(), queries.NewListAppReviewsQuery())
	if err != nil {
		return err
	}

	response := make([]AppReview, len(reviews))
	for i, r := range reviews {
		response[i] = toAppReview(r, s.location)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateAppReview handles POST /api/app-reviews.
func (s *Server) CreateAppReview(ctx echo.Context) error {
	var body NewAppReview
	if err := ctx.Bind(&body); err != nil {
		return newError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateAppReviewCommand(kernel.NewUUID(), UserID(ctx), body.Rating, body.Comment)
	if err != nil {
		return err
	}

	if err = s.createAppReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	mine, err := s.myAppReview(ctx)
	if err != nil {
		return err
	}
	if !mine.Exists {
		return errs.NewObjectNotFoundError("app_review", cmd.ReviewID().String())
	}

	return ctx.JSON(http.StatusCreated, toAppReview(*mine.Review, s.location))
}

// GetMyAppReview handles GET /api/app-reviews/my.
func (s *Server) GetMyAppReview(ctx echo.Context) error {
	mine, err := s.myAppReview(ctx)
	if err != nil {
		return err
	}

	response := MyAppReview{Exists: mine.Exists}
	if mine.Review != nil {
		r := toAppReview(*mine.Review, s.location)
		response.Review = &r
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) myAppReview(ctx echo.Context) (queries.MyAppReviewResponse, error) {
	query, err := queries.NewGetMyAppReviewQuery(UserID(ctx))
	if err != nil {
		return queries.MyAppReviewResponse{}, err
	}
	return s.getMyAppReviewHandler.Handle(ctx.Request().Context(), query)
}
