// Package medication models the catalog items a customer can order through
// the portal. Items are read-only projections of the server's catalog.
package medication

import (
	"errors"
	"fmt"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

var (
	// ErrMedicationIsNotConstructed is returned when a Medication was not
	// created through the NewMedication constructor.
	ErrMedicationIsNotConstructed = errors.New("Medication must be created via NewMedication constructor")

	// ErrMedicationIDIsRequired indicates a missing catalog identifier.
	ErrMedicationIDIsRequired = errs.NewValueIsRequiredError("medication id")

	// ErrMedicationNameIsRequired indicates a missing display name.
	ErrMedicationNameIsRequired = errs.NewValueIsRequiredError("medication name")
)

// Medication is one orderable catalog item: an identifier, display name,
// description, and the stock level reported by the server.
type Medication struct { //nolint:recvcheck //using for validation
	id            string
	name          string
	description   string
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewMedication creates a catalog item. ID and name are required; stock must
// not be negative.
func NewMedication(id string, name string, description string, stockQuantity int) (Medication, error) {
	m := Medication{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setStockQuantity(stockQuantity),
	); err != nil {
		return Medication{}, err
	}

	m.description = description
	return m, nil
}

// Validate ensures the item was created through the constructor.
func (m Medication) Validate() error {
	return m.guard.Validate(ErrMedicationIsNotConstructed)
}

// ID returns the catalog identifier.
func (m Medication) ID() string {
	return m.id
}

// Name returns the display name.
func (m Medication) Name() string {
	return m.name
}

// Description returns the catalog description.
func (m Medication) Description() string {
	return m.description
}

// StockQuantity returns the stock level last reported by the server.
func (m Medication) StockQuantity() int {
	return m.stockQuantity
}

// InStock reports whether at least one unit is available.
func (m Medication) InStock() bool {
	return m.stockQuantity > 0
}

// String returns the catalog line the portal shows for the item.
func (m Medication) String() string {
	return fmt.Sprintf("%s - %s (%d in stock)", m.name, m.description, m.stockQuantity)
}

func (m *Medication) setID(id string) error {
	if id == "" {
		return ErrMedicationIDIsRequired
	}

	m.id = id
	return nil
}

func (m *Medication) setName(name string) error {
	if name == "" {
		return ErrMedicationNameIsRequired
	}

	m.name = name
	return nil
}

func (m *Medication) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}

	m.stockQuantity = stockQuantity
	return nil
}
