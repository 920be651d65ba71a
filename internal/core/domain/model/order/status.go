package order

import (
	"fmt"

	"eda/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Placed ──> Accepted ──> Delivered
//	  │           │
//	  ├───────────┴──> Cancelled
//	  └───────────┴──> Modified
//
// Delivered, Cancelled and Modified are final. Accepted -> Delivered is driven by
// the delivery watchdog once the ETA has elapsed; every other edge is a staff action.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Placed is the state right after checkout.
	Placed

	// Accepted means the restaurant confirmed the order and gave an ETA.
	Accepted

	// Delivered is set by the delivery watchdog.
	Delivered

	// Cancelled by staff or by the user.
	Cancelled

	// Modified marks an order that staff changed after checkout; it is
	// reported separately in statistics.
	Modified
)

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Placed:    "placed",
	Accepted:  "accepted",
	Delivered: "delivered",
	Cancelled: "cancelled",
	Modified:  "modified",
}

// ParseStatus converts the persisted/wire name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", name))
}

// Validate rejects Unknown and values outside the closed set.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled || s == Modified
}

// Accept transitions Placed -> Accepted.
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return Unknown, transitionError(s, "accept")
	}
	return Accepted, nil
}

// Deliver transitions Accepted -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return Unknown, transitionError(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions Placed or Accepted -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Placed && s != Accepted {
		return Unknown, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

// Modify transitions Placed or Accepted -> Modified.
func (s Status) Modify() (Status, error) {
	if s != Placed && s != Accepted {
		return Unknown, transitionError(s, "modify")
	}
	return Modified, nil
}

func transitionError(s Status, action string) error {
	return errs.NewConflictErrorWithCause(
		"status transition is not allowed",
		fmt.Errorf("%s is not a valid status to %s", s, action),
	)
}
