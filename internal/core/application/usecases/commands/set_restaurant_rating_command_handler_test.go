package commands_test

import (
	"testing"

	"deliverytech/internal/core/application/usecases/commands"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetRestaurantRatingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetRestaurantRatingCommand(kernel.ID(7), decimal.RequireFromString("3.5"))
	require.NoError(t, err)

	rest := storedRestaurant(t, 7, true)
	repo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(7)).Return(rest, nil).Once(),
		repo.On("Update", mock.Anything, rest).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRestaurantRatingCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, rest.Rating().Equal(decimal.RequireFromString("3.5")))
	uow.AssertExpectations(t)
}

func TestSetRestaurantRatingCommandHandler_Handle_OutOfRange(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetRestaurantRatingCommand(kernel.ID(7), decimal.RequireFromString("5.1"))
	require.NoError(t, err)

	rest := storedRestaurant(t, 7, true)
	repo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(7)).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRestaurantRatingCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.True(t, rest.Rating().Equal(decimal.RequireFromString("4.5")))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
