package http

import (
	"net/http"

	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/application/usecases/queries"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return newError(http.StatusBadRequest, "Invalid request body")
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, line := range body.Items {
		item, err := order.NewItem(line.DishID, line.Name, line.Price, line.Qty)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, UserID(ctx), body.RestaurantID, items, body.Address, body.Comment)
	if err != nil {
		return err
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// ListUserOrders handles GET /api/orders.
func (s *Server) ListUserOrders(ctx echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(UserID(ctx))
	if err != nil {
		return err
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o, s.location)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{order_id}. Orders of other users look missing
// unless the caller is a super admin.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "order_id")
	if err != nil {
		return err
	}

	resp, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	caller := UserID(ctx)
	if resp.UserID != caller && !s.identity.IsSuperAdmin(caller) {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return ctx.JSON(http.StatusOK, toOrder(resp, s.location))
}

// AcceptOrder handles POST /api/admin/orders/{order_id}/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "order_id")
	if err != nil {
		return err
	}

	var body AcceptOrder
	if err = ctx.Bind(&body); err != nil {
		return newError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, body.EtaMinutes)
	if err != nil {
		return err
	}

	if err = s.orderStatusHandler.Accept(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// CancelOrder handles POST /api/admin/orders/{order_id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.orderStatusHandler.Cancel(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// ModifyOrder handles POST /api/admin/orders/{order_id}/modify.
func (s *Server) ModifyOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewModifyOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.orderStatusHandler.Modify(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) loadOrder(ctx echo.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

func (s *Server) respondOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	resp, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toOrder(resp, s.location))
}
