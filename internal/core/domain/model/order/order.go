package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/pkg/errs"
)

const (
	// MinDeliveryWindow is the shortest time an accepted order waits before it can be
	// marked delivered, however small its ETA is.
	MinDeliveryWindow = 5 * time.Minute

	// MaxEtaMinutes caps the estimate staff can give when accepting an order (one week).
	MaxEtaMinutes = 7 * 24 * 60

	// maxWindowMinutes is the largest ETA that still fits in a time.Duration.
	maxWindowMinutes = int64(math.MaxInt64 / time.Minute)
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the checkout and delivery flow.
//
// Invariants:
//   - id is a valid UUID, userID and restaurantID are positive
//   - items is not empty and totalPrice is the sum of item subtotals
//   - acceptedAt and etaMinutes are set together when the order is accepted;
//     restored rows may lack either, and such orders are never auto-delivered
type Order struct {
	id           kernel.UUID
	userID       int64
	restaurantID int64
	items        []Item
	totalPrice   int
	address      string
	comment      string
	status       Status
	createdAt    time.Time

	// acceptedAt and etaMinutes are nil until Accept
	acceptedAt *time.Time
	etaMinutes *int

	isConstructed bool
}

// NewOrder creates a Placed order from a checkout.
//
//	item, _ := order.NewItem(7, "Borscht", 350, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), 42, 3, []order.Item{item}, "Lenina 1", "", clock.Now())
func NewOrder(
	id kernel.UUID,
	userID, restaurantID int64,
	items []Item,
	address, comment string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		address:       strings.TrimSpace(address),
		comment:       strings.TrimSpace(comment),
		status:        Placed,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUser(userID),
		o.setRestaurant(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. Timing fields may be missing
// even for accepted orders; that state is tolerated and reported by DeliveryDeadline.
func RestoreOrder(
	id kernel.UUID,
	userID, restaurantID int64,
	items []Item,
	totalPrice int,
	address, comment string,
	status Status,
	createdAt time.Time,
	acceptedAt *time.Time,
	etaMinutes *int,
) (*Order, error) {
	o := &Order{
		address:       address,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUser(userID),
		o.setRestaurant(restaurantID),
		status.Validate(),
		o.setEta(etaMinutes),
	); err != nil {
		return nil, err
	}
	if totalPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total_price", fmt.Errorf("%d is negative", totalPrice))
	}

	o.items = append([]Item(nil), items...)
	o.totalPrice = totalPrice
	o.status = status
	if acceptedAt != nil {
		at := *acceptedAt
		o.acceptedAt = &at
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID      { return o.id }
func (o *Order) UserID() int64        { return o.userID }
func (o *Order) RestaurantID() int64  { return o.restaurantID }
func (o *Order) TotalPrice() int      { return o.totalPrice }
func (o *Order) Address() string      { return o.address }
func (o *Order) Comment() string      { return o.comment }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// AcceptedAt returns when the order was accepted, or nil.
func (o *Order) AcceptedAt() *time.Time {
	if o.acceptedAt == nil {
		return nil
	}
	at := *o.acceptedAt
	return &at
}

// EtaMinutes returns the promised delivery duration, or nil.
func (o *Order) EtaMinutes() *int {
	if o.etaMinutes == nil {
		return nil
	}
	eta := *o.etaMinutes
	return &eta
}

// Accept records the restaurant's confirmation and its delivery estimate.
func (o *Order) Accept(etaMinutes int, at time.Time) error {
	if etaMinutes < 0 || etaMinutes > MaxEtaMinutes {
		return errs.NewValueIsOutOfRangeError("eta_minutes", etaMinutes, 0, MaxEtaMinutes)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedAt = &at
	o.etaMinutes = &etaMinutes
	return nil
}

// Cancel moves a placed or accepted order to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Modify moves a placed or accepted order to Modified.
func (o *Order) Modify() error {
	newStatus, err := o.status.Modify()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver moves an accepted order to Delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// DeliveryDeadline is acceptedAt + max(etaMinutes, minWindow).
// ok is false when acceptedAt or etaMinutes is missing. An ETA too large for
// time.Duration saturates instead of wrapping.
func (o *Order) DeliveryDeadline(minWindow time.Duration) (deadline time.Time, ok bool) {
	if o.acceptedAt == nil || o.etaMinutes == nil {
		return time.Time{}, false
	}

	window := time.Duration(math.MaxInt64)
	if eta := int64(*o.etaMinutes); eta < maxWindowMinutes {
		window = time.Duration(eta) * time.Minute
	}
	if window < minWindow {
		window = minWindow
	}
	return o.acceptedAt.Add(window), true
}

// IsDeliveryDue reports whether an accepted order has waited out its deadline at now.
func (o *Order) IsDeliveryDue(now time.Time, minWindow time.Duration) bool {
	if o.status != Accepted {
		return false
	}
	deadline, ok := o.DeliveryDeadline(minWindow)
	return ok && !now.Before(deadline)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUser(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user_id", fmt.Errorf("%d is not greater than 0", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurant(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", fmt.Errorf("%d is not greater than 0", restaurantID))
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0
	for _, item := range items {
		total += item.Subtotal()
	}
	o.items = append([]Item(nil), items...)
	o.totalPrice = total
	return nil
}

func (o *Order) setEta(etaMinutes *int) error {
	if etaMinutes == nil {
		return nil
	}
	if *etaMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("eta_minutes", fmt.Errorf("%d is negative", *etaMinutes))
	}
	eta := *etaMinutes
	o.etaMinutes = &eta
	return nil
}
