package kernel_test

import (
	"fmt"
	"testing"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create valid ID from positive value", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("should reject non-positive values", func(t *testing.T) {
		for _, value := range []int64{0, -1, -42} {
			t.Run(fmt.Sprintf("value %d", value), func(t *testing.T) {
				_, err := kernel.NewID(value)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("should accept assigned identifiers", func(t *testing.T) {
		require.NoError(t, kernel.ID(1).Validate())
		require.NoError(t, kernel.ID(1<<40).Validate())
	})

	t.Run("should reject the unassigned zero value", func(t *testing.T) {
		err := kernel.ID(0).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, kernel.ID(0).IsZero())
	assert.False(t, kernel.ID(7).IsZero())
}

func TestID_IsEqual(t *testing.T) {
	assert.True(t, kernel.ID(7).IsEqual(kernel.ID(7)))
	assert.False(t, kernel.ID(7).IsEqual(kernel.ID(8)))
}
