package session

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address was not created
	// through the NewAddress constructor.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrDisplayNameIsRequired indicates a missing human-readable address text.
	ErrDisplayNameIsRequired = errs.NewValueIsRequiredError("address display name")
)

// Address is a delivery destination: the human-readable text returned by the
// geocoder plus its coordinate. Immutable value object.
type Address struct { //nolint:recvcheck //using for validation
	displayName string
	point       kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from geocoder output.
// The display name must be non-empty and the point properly constructed.
func NewAddress(displayName string, point kernel.GeoPoint) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setDisplayName(displayName), a.setPoint(point)); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// DisplayName returns the human-readable address text.
func (a Address) DisplayName() string {
	return a.displayName
}

// Point returns the address coordinate.
func (a Address) Point() kernel.GeoPoint {
	return a.point
}

// String returns the display name. Implements fmt.Stringer.
func (a Address) String() string {
	return a.displayName
}

func (a *Address) setDisplayName(displayName string) error {
	if displayName == "" {
		return ErrDisplayNameIsRequired
	}

	a.displayName = displayName
	return nil
}

func (a *Address) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	a.point = point
	return nil
}
