package http

import (
	"time"

	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/application/usecases/queries"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server holds the use case handlers behind the HTTP routes.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	orderStatusHandler     commands.OrderStatusCommandHandler
	createReviewHandler    commands.CreateReviewCommandHandler
	deleteReviewHandler    commands.DeleteReviewCommandHandler
	createAppReviewHandler commands.CreateAppReviewCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getUserOrdersHandler        queries.GetUserOrdersQueryHandler
	getOrderStatsHandler        queries.GetOrderStatsQueryHandler
	getReviewByOrderHandler     queries.GetReviewByOrderQueryHandler
	getRestaurantReviewsHandler queries.GetRestaurantReviewsQueryHandler
	listReviewsHandler          queries.ListReviewsQueryHandler
	listAppReviewsHandler       queries.ListAppReviewsQueryHandler
	getMyAppReviewHandler       queries.GetMyAppReviewQueryHandler

	identity Identity
	location *time.Location
}

type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	OrderStatus     commands.OrderStatusCommandHandler
	CreateReview    commands.CreateReviewCommandHandler
	DeleteReview    commands.DeleteReviewCommandHandler
	CreateAppReview commands.CreateAppReviewCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	GetUserOrders        queries.GetUserOrdersQueryHandler
	GetOrderStats        queries.GetOrderStatsQueryHandler
	GetReviewByOrder     queries.GetReviewByOrderQueryHandler
	GetRestaurantReviews queries.GetRestaurantReviewsQueryHandler
	ListReviews          queries.ListReviewsQueryHandler
	ListAppReviews       queries.ListAppReviewsQueryHandler
	GetMyAppReview       queries.GetMyAppReviewQueryHandler
}

// NewServer creates a server; timestamps in responses are rendered in loc.
func NewServer(h Handlers, identity Identity, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		createOrderHandler:          h.CreateOrder,
		orderStatusHandler:          h.OrderStatus,
		createReviewHandler:         h.CreateReview,
		deleteReviewHandler:         h.DeleteReview,
		getOrderHandler:             h.GetOrder,
		getUserOrdersHandler:        h.GetUserOrders,
		getOrderStatsHandler:        h.GetOrderStats,
		getReviewByOrderHandler:     h.GetReviewByOrder,
		getRestaurantReviewsHandler: h.GetRestaurantReviews,
		listReviewsHandler:          h.ListReviews,
		createAppReviewHandler:      h.CreateAppReview,
		listAppReviewsHandler:       h.ListAppReviews,
		getMyAppReviewHandler:       h.GetMyAppReview,
		identity:                    identity,
		location:                    loc,
	}
}

func bindUUIDPath(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw string
	if err := runtime.BindStyledParameterWithLocation(
		"simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &raw,
	); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func bindInt64Path(ctx echo.Context, name string) (int64, error) {
	var value int64
	if err := runtime.BindStyledParameterWithLocation(
		"simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &value,
	); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// bindOptionalInt64Query returns 0 when the parameter is absent.
func bindOptionalInt64Query(ctx echo.Context, name string) (int64, error) {
	var value *int64
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return 0, nil
	}
	return *value, nil
}
