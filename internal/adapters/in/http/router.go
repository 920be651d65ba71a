package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

type RouterConfig struct {
	ServiceName string
	CORSOrigins []string
	// Spec is the raw document served at /api/openapi.yaml; Doc validates requests.
	Spec   []byte
	Doc    *openapi3.T
	Health *healthgo.Health
	Logger *slog.Logger
}

// NewRouter builds the echo instance with the middleware stack and every route.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(slogecho.NewWithConfig(cfg.Logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, UserIDHeader},
	}))
	e.Use(otelecho.Middleware(cfg.ServiceName))

	if cfg.Health != nil {
		e.GET("/health", echo.WrapHandler(cfg.Health.Handler()))
	}
	if cfg.Spec != nil {
		e.GET("/api/openapi.yaml", func(c echo.Context) error {
			return c.Blob(http.StatusOK, "application/yaml", cfg.Spec)
		})
		e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.yaml")))
	}

	apiGroup := e.Group("/api")
	if cfg.Doc != nil {
		validator, err := OpenAPIValidator(cfg.Doc)
		if err != nil {
			return nil, err
		}
		apiGroup.Use(validator)
	}

	RegisterHandlers(apiGroup, s)
	return e, nil
}

// RegisterHandlers mounts the API routes under g, which is expected to be /api.
func RegisterHandlers(g *echo.Group, s *Server) {
	user := s.identity.RequireUser
	admin := s.identity.RequireSuperAdmin

	g.POST("/orders", s.CreateOrder, user)
	g.GET("/orders", s.ListUserOrders, user)
	g.GET("/orders/:order_id", s.GetOrder, user)

	g.POST("/reviews", s.CreateReview, user)
	g.GET("/reviews/by-order", s.GetReviewByOrder, user)
	g.GET("/reviews/restaurant/:restaurant_id", s.GetRestaurantReviews)

	g.GET("/app-reviews", s.ListAppReviews)
	g.POST("/app-reviews", s.CreateAppReview, user)
	g.GET("/app-reviews/my", s.GetMyAppReview, user)

	g.POST("/admin/orders/:order_id/accept", s.AcceptOrder, admin)
	g.POST("/admin/orders/:order_id/cancel", s.CancelOrder, admin)
	g.POST("/admin/orders/:order_id/modify", s.ModifyOrder, admin)
	g.GET("/admin/stats", s.GetStats, admin)
	g.GET("/admin/reviews", s.ListReviews, admin)
	g.DELETE("/admin/reviews/:review_id", s.DeleteReview, admin)
}
