package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/usecases/commands"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

func TestNewPlaceOrderCommand_ValidQuantities(t *testing.T) {
	for quantity := commands.QuantityMin; quantity <= commands.QuantityMax; quantity++ {
		cmd, err := commands.NewPlaceOrderCommand(quantity)
		require.NoError(t, err)
		assert.Equal(t, quantity, cmd.Quantity())
	}
}

func TestNewPlaceOrderCommand_OutOfRange(t *testing.T) {
	for _, quantity := range []int{-1, 0, 6, 100} {
		_, err := commands.NewPlaceOrderCommand(quantity)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestPlaceOrderCommand_ZeroValue(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
