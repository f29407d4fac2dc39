package commands

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

// Quantity limits per order, enforced before any request is made.
const (
	QuantityMin = 1
	QuantityMax = 5
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand carries the final order quantity. Everything else the
// order needs (address, medication, plan) already lives in the session.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	quantity int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command for the given quantity.
// The quantity must be an integer in [1,5].
func NewPlaceOrderCommand(quantity int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setQuantity(quantity); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Quantity returns the number of units to order.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity < QuantityMin || quantity > QuantityMax {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, QuantityMin, QuantityMax)
	}

	c.quantity = quantity
	return nil
}
