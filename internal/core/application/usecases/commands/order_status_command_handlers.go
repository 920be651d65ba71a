package commands

import (
	"context"
	"log/slog"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/core/ports"
	"eda/internal/pkg/errs"
)

// OrderStatusCommandHandler applies staff status changes: accept, cancel and modify.
// Each change loads the order, applies the transition, writes it in its own
// transaction guarded by the status it was read with, and publishes one
// StatusChangedEvent after commit.
//
// Example:
//
//	handler := NewOrderStatusCommandHandler(uowFactory, clock, publisher, logger)
//	cmd, _ := NewAcceptOrderCommand(orderID, 30)
//	if err := handler.Accept(ctx, cmd); errors.Is(err, errs.ErrConflict) {
//	    // order was not placed
//	}
type OrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	events     eventSink
}

func NewOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) OrderStatusCommandHandler {
	return OrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		events:     newEventSink(publisher, logger),
	}
}

func (h *OrderStatusCommandHandler) Accept(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Accept(cmd.EtaMinutes(), now)
	})
}

func (h *OrderStatusCommandHandler) Cancel(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.OrderID(), func(o *order.Order, _ time.Time) error {
		return o.Cancel()
	})
}

func (h *OrderStatusCommandHandler) Modify(ctx context.Context, cmd ModifyOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.OrderID(), func(o *order.Order, _ time.Time) error {
		return o.Modify()
	})
}

func (h *OrderStatusCommandHandler) change(
	ctx context.Context,
	orderID kernel.UUID,
	transition func(o *order.Order, now time.Time) error,
) error {
	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	from := o.Status()
	if err = transition(o, now); err != nil {
		return err
	}

	updated, err := orderRepo.UpdateStatusFrom(ctx, o, from)
	if err != nil {
		return err
	}
	if !updated {
		return errs.NewConflictError("order status changed concurrently")
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.publish(ctx, order.NewStatusChangedEvent(o, from, now))
	return nil
}
