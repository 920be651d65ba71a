package order

import (
	"errors"
	"fmt"
	"strings"

	"eda/internal/pkg/errs"
)

// Item is one line of an order. Prices are whole currency units, as the menu stores them.
type Item struct {
	dishID int64
	name   string
	price  int
	qty    int
}

func NewItem(dishID int64, name string, price, qty int) (Item, error) {
	name = strings.TrimSpace(name)

	var errList []error
	if dishID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("dish_id", fmt.Errorf("%d is not greater than 0", dishID)))
	}
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if price < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price)))
	}
	if qty <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty)))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{dishID: dishID, name: name, price: price, qty: qty}, nil
}

func (i Item) DishID() int64 { return i.dishID }
func (i Item) Name() string  { return i.name }
func (i Item) Price() int    { return i.price }
func (i Item) Qty() int      { return i.qty }

// Subtotal is price multiplied by quantity.
func (i Item) Subtotal() int {
	return i.price * i.qty
}

// String renders the line the way reviews list ordered dishes: "Borscht x2".
func (i Item) String() string {
	return fmt.Sprintf("%s x%d", i.name, i.qty)
}
