package commands_test

import (
	"testing"

	"deliverytech/internal/core/application/usecases/commands"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/services"
	"deliverytech/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		items := []services.ItemRequest{itemRequest(t, 1, 2), itemRequest(t, 2, 1)}

		cmd, err := commands.NewCreateOrderCommand(kernel.ID(11), kernel.ID(7), "no onions", items)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(11), cmd.CustomerID())
		assert.Equal(t, kernel.ID(7), cmd.RestaurantID())
		assert.Equal(t, "no onions", cmd.Notes())
		assert.Len(t, cmd.Items(), 2)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("items are required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.ID(11), kernel.ID(7), "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed item is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.ID(11), kernel.ID(7), "",
			[]services.ItemRequest{{}})
		require.ErrorIs(t, err, services.ErrItemRequestIsNotConstructed)
	})

	t.Run("invalid customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.ID(0), kernel.ID(7), "",
			[]services.ItemRequest{itemRequest(t, 1, 1)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.ID(11), kernel.ID(-1), "",
			[]services.ItemRequest{itemRequest(t, 1, 1)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("items are copied", func(t *testing.T) {
		items := []services.ItemRequest{itemRequest(t, 1, 1)}
		cmd, err := commands.NewCreateOrderCommand(kernel.ID(11), kernel.ID(7), "", items)
		require.NoError(t, err)

		items[0] = services.ItemRequest{}
		assert.NoError(t, cmd.Items()[0].Validate())
	})
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
