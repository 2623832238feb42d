package commands_test

import (
	"testing"

	"deliverytech/internal/core/application/usecases/commands"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cancelOrderCommand(t *testing.T) commands.CancelOrderCommand {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(kernel.ID(42), "restaurant closed")
	require.NoError(t, err)
	return cmd
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := storedOrder(t, 42, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(42)).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cancelOrderCommand(t))
	require.NoError(t, err)

	assert.Same(t, ord, updated)
	assert.Equal(t, order.Canceled, updated.Status())
	assert.Contains(t, updated.Notes(), "CANCELED: restaurant closed")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCanceledSkipsWrite(t *testing.T) {
	ctx := t.Context()
	ord := storedOrder(t, 42, order.Canceled)
	notesBefore := ord.Notes()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(42)).Return(ord, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cancelOrderCommand(t))
	require.NoError(t, err)

	assert.Same(t, ord, updated)
	assert.Equal(t, notesBefore, updated.Notes())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	ord := storedOrder(t, 42, order.Delivered)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(42)).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cancelOrderCommand(t))

	require.ErrorIs(t, err, errs.ErrBusinessRule)
	assert.Nil(t, updated)
	assert.Equal(t, order.Delivered, ord.Status())
	uow.AssertExpectations(t)
}
