// Package order provides the Order aggregate of the checkout and delivery
// flow.
//
// The package includes:
//   - Order: identity, lines, totals and the lifecycle timestamps
//   - Item: a validated order line
//   - Status: the closed set of lifecycle states and their transitions
//
// Key business rules:
//   - Checkout creates a Placed order whose total is the sum of its lines
//   - Only a Placed order can be accepted; acceptance records when and the ETA
//   - An accepted order is due for delivery at acceptedAt + max(ETA, MinDeliveryWindow)
//   - An accepted order without acceptedAt or ETA is never due
//   - Delivered, Cancelled and Modified are final
package order
