package commands

import (
	"context"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
)

// CreateAppReviewCommandHandler stores a user's single live review of the app.
// A second review is rejected with ErrAlreadyReviewed.
type CreateAppReviewCommandHandler struct {
	uowFactory AppReviewUoWFactory
	clock      kernel.Clock
}

func NewCreateAppReviewCommandHandler(uowFactory AppReviewUoWFactory, clock kernel.Clock) CreateAppReviewCommandHandler {
	return CreateAppReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateAppReviewCommandHandler) Handle(ctx context.Context, cmd CreateAppReviewCommand) error {
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

	repo := uow.AppReviewRepository()

	exists, err := repo.ExistsForUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyReviewed
	}

	r, err := review.NewAppReview(cmd.ReviewID(), cmd.UserID(), cmd.Rating(), cmd.Comment(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
