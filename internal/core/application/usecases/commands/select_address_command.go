package commands

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

var ErrSelectAddressCommandIsNotConstructed = errors.New(
	"SelectAddressCommand must be created via NewSelectAddressCommand constructor",
)

// SelectAddressCommand carries a geocoder candidate the customer picked from
// the search results. Selecting only stores the working address; the
// location is confirmed in a separate step after optional map adjustment.
type SelectAddressCommand struct { //nolint:recvcheck //using for validation
	candidate session.Address

	guard guard.ConstructorGuard
}

// NewSelectAddressCommand creates a command from a geocoder result.
// The candidate must be a properly constructed address.
func NewSelectAddressCommand(candidate session.Address) (SelectAddressCommand, error) {
	cmd := SelectAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCandidate(candidate); err != nil {
		return SelectAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectAddressCommand) Validate() error {
	return c.guard.Validate(ErrSelectAddressCommandIsNotConstructed)
}

// Candidate returns the selected geocoder result.
func (c SelectAddressCommand) Candidate() session.Address {
	return c.candidate
}

func (c *SelectAddressCommand) setCandidate(candidate session.Address) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	c.candidate = candidate
	return nil
}
