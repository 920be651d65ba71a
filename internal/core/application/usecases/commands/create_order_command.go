package commands

import (
	"errors"
	"fmt"
	"strings"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand is a checkout of a cart into a placed order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	userID       int64
	restaurantID int64
	items        []order.Item
	address      string
	comment      string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID, restaurantID int64,
	items []order.Item,
	address, comment string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		address: strings.TrimSpace(address),
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) UserID() int64        { return c.userID }
func (c CreateOrderCommand) RestaurantID() int64  { return c.restaurantID }
func (c CreateOrderCommand) Address() string      { return c.address }
func (c CreateOrderCommand) Comment() string      { return c.comment }

func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user_id", fmt.Errorf("%d is not greater than 0", userID))
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", fmt.Errorf("%d is not greater than 0", restaurantID))
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
