package commands

import (
	"context"
	"log/slog"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/core/domain/services"
	"eda/internal/core/ports"
)

// DeliverDueOrdersResult summarizes one sweep.
type DeliverDueOrdersResult struct {
	// Now is the single instant every order of the sweep was judged against.
	Now time.Time
	// Scanned is the number of accepted orders loaded.
	Scanned int
	// Delivered is the number of orders written as delivered.
	Delivered int
	// Raced counts due orders another writer moved out of accepted before the write.
	Raced int
	// Skipped counts accepted rows that could not be loaded as orders.
	Skipped int
}

// DeliverDueOrdersCommandHandler promotes accepted orders whose delivery window
// has elapsed. All writes of a sweep share one transaction; any storage error rolls
// the whole sweep back and is returned to the caller untouched. A row that fails
// to load is logged and skipped, so it never holds back the other orders.
type DeliverDueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	dispatcher services.DeliveryDispatcher
	events     eventSink
	logger     *slog.Logger
}

func NewDeliverDueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	dispatcher services.DeliveryDispatcher,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DeliverDueOrdersCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeliverDueOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		dispatcher: dispatcher,
		events:     newEventSink(publisher, logger),
		logger:     logger,
	}
}

func (h *DeliverDueOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverDueOrdersCommand,
) (DeliverDueOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverDueOrdersResult{}, err
	}

	result := DeliverDueOrdersResult{Now: h.clock.Now()}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, unreadable, err := orderRepo.GetAllInAcceptedStatus(ctx)
	if err != nil {
		return result, err
	}
	result.Scanned = len(orders) + len(unreadable)
	result.Skipped = len(unreadable)
	for _, row := range unreadable {
		h.logger.WarnContext(ctx, "accepted order skipped, stored row is invalid",
			slog.String("order_id", row.ID),
			slog.Any("err", row.Err),
		)
	}

	due := h.dispatcher.Dispatch(orders, result.Now)

	events := make([]order.StatusChangedEvent, 0, len(due))
	for _, o := range due {
		updated, updateErr := orderRepo.UpdateStatusFrom(ctx, o, order.Accepted)
		if updateErr != nil {
			return result, updateErr
		}
		if !updated {
			result.Raced++
			continue
		}
		events = append(events, order.NewStatusChangedEvent(o, order.Accepted, result.Now))
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	result.Delivered = len(events)

	h.events.publish(ctx, events...)

	return result, nil
}
