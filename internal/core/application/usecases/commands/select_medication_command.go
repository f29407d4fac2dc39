package commands

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

var (
	ErrSelectMedicationCommandIsNotConstructed = errors.New(
		"SelectMedicationCommand must be created via NewSelectMedicationCommand constructor",
	)
	ErrMedicationIDIsRequired = errs.NewValueIsRequiredError("medication id")
)

// SelectMedicationCommand carries the catalog item the customer chose for
// delivery.
type SelectMedicationCommand struct { //nolint:recvcheck //using for validation
	medicationID string

	guard guard.ConstructorGuard
}

// NewSelectMedicationCommand creates a command for the given catalog item.
// The medication id must be non-empty.
func NewSelectMedicationCommand(medicationID string) (SelectMedicationCommand, error) {
	cmd := SelectMedicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMedicationID(medicationID); err != nil {
		return SelectMedicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectMedicationCommand) Validate() error {
	return c.guard.Validate(ErrSelectMedicationCommandIsNotConstructed)
}

// MedicationID returns the chosen catalog item identifier.
func (c SelectMedicationCommand) MedicationID() string {
	return c.medicationID
}

func (c *SelectMedicationCommand) setMedicationID(medicationID string) error {
	if medicationID == "" {
		return ErrMedicationIDIsRequired
	}

	c.medicationID = medicationID
	return nil
}
