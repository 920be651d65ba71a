package commands

import (
	"errors"

	"eda/internal/pkg/guard"
)

// DeliverDueOrdersCommand runs one delivery sweep over accepted orders.
//
// Example:
//
//	cmd := NewDeliverDueOrdersCommand()
//	handler := NewDeliverDueOrdersCommandHandler(uowFactory, clock, dispatcher, publisher, logger)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    logger.Error("delivery sweep failed", slog.Any("err", err))
//	}
type DeliverDueOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrDeliverDueOrdersCommandIsNotConstructed = errors.New(
		"DeliverDueOrdersCommand must be created via NewDeliverDueOrdersCommand constructor",
	)
)

// NewDeliverDueOrdersCommand creates a parameterless sweep command.
func NewDeliverDueOrdersCommand() DeliverDueOrdersCommand {
	return DeliverDueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c DeliverDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeliverDueOrdersCommandIsNotConstructed)
}
