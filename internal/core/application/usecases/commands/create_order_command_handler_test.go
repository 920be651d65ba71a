package commands_test

import (
	"errors"
	"testing"

	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, 42, 3, newTestItems(t), "Lenina 1", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockOrderUoWFactory)

	var stored *order.Order
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.ID().IsEqual(id))
	assert.Equal(t, order.Placed, stored.Status())
	assert.Equal(t, 700, stored.TotalPrice())
	assert.True(t, stored.CreatedAt().Equal(testNow))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 3, newTestItems(t), "", "")
	require.NoError(t, err)
	addErr := errors.New("duplicate key")

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(addErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, addErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 3, newTestItems(t), "", "")
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(errors.New("begin failed")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
