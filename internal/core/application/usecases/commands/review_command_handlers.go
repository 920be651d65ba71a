package commands

import (
	"context"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
	"eda/internal/pkg/errs"
)

// ErrAlreadyReviewed is returned when the user already has a live review of the order.
var ErrAlreadyReviewed = errs.NewConflictError("already_reviewed")

// CreateReviewCommandHandler stores a review after checking the order belongs
// to the reviewer. The restaurant is taken from the order, never from input.
type CreateReviewCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateReviewCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	// someone else's order is reported exactly like a missing one
	if o.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.ExistsForOrder(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyReviewed
	}

	r, err := review.NewReview(
		cmd.ReviewID(),
		cmd.OrderID(),
		o.RestaurantID(),
		cmd.UserID(),
		cmd.Rating(),
		cmd.Comment(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteReviewCommandHandler soft-deletes a review. Deleting twice succeeds.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()

	r, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	r.Delete()

	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
