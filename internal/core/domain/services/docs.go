// Package services contains domain services: behaviour that spans several
// aggregates or needs a policy value the aggregates do not own.
package services
