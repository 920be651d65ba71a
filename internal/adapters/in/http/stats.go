package http

import (
	"net/http"

	"eda/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetStats handles GET /api/admin/stats[?restaurant_id=].
func (s *Server) GetStats(ctx echo.Context) error {
	restaurantID, err := bindOptionalInt64Query(ctx, "restaurant_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatsQuery(restaurantID)
	if err != nil {
		return err
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Stats{
		Today: toStatsBucket(stats.Today),
		Month: toStatsBucket(stats.Month),
	})
}
