// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, mutate aggregates, commit, then publish what changed.
package commands

import (
	"context"

	"eda/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// AppReviewRepoFactory provides access to app review repository within a transaction.
	AppReviewRepoFactory interface {
		AppReviewRepository() ports.AppReviewRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for review-only operations.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// AppReviewUoW manages transactions for app review operations.
	AppReviewUoW interface {
		TxManager
		AppReviewRepoFactory
	}

	// AppReviewUoWFactory creates new app review unit of work instances.
	AppReviewUoWFactory interface {
		Create() AppReviewUoW
	}

	// UoW spans orders and reviews, used when a review must be checked against its order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   err = uow.ReviewRepository().Add(ctx, r)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
