// Package kernel holds the value objects shared by every aggregate: UUID
// identifiers and the fixed-offset Clock the order lifecycle is measured
// against.
package kernel
