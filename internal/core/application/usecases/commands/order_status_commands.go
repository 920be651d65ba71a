package commands

import (
	"errors"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrModifyOrderCommandIsNotConstructed = errors.New(
		"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
	)
)

// AcceptOrderCommand confirms a placed order with a delivery estimate.
type AcceptOrderCommand struct {
	orderID    kernel.UUID
	etaMinutes int

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.UUID, etaMinutes int) (AcceptOrderCommand, error) {
	var errList []error
	errList = append(errList, orderID.Validate())
	if etaMinutes < 0 || etaMinutes > order.MaxEtaMinutes {
		errList = append(errList, errs.NewValueIsOutOfRangeError("eta_minutes", etaMinutes, 0, order.MaxEtaMinutes))
	}
	if err := errors.Join(errList...); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID:    orderID,
		etaMinutes: etaMinutes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AcceptOrderCommand) EtaMinutes() int      { return c.etaMinutes }

// CancelOrderCommand cancels a placed or accepted order.
type CancelOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ModifyOrderCommand marks a placed or accepted order as changed by staff.
type ModifyOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewModifyOrderCommand(orderID kernel.UUID) (ModifyOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ModifyOrderCommand{}, err
	}
	return ModifyOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

func (c ModifyOrderCommand) OrderID() kernel.UUID { return c.orderID }
