package session

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

// StatusArrived is the flight status the server broadcasts when a drone
// reaches the delivery location. Other status strings are shown verbatim but
// carry no lifecycle meaning for the client.
const StatusArrived = "ARRIVED"

var (
	// ErrPositionEventIsNotConstructed is returned when a PositionEvent was
	// not created through the NewPositionEvent constructor.
	ErrPositionEventIsNotConstructed = errors.New(
		"PositionEvent must be created via NewPositionEvent constructor")

	// ErrEventOrderNumberIsRequired indicates a broadcast without an order
	// reference; such events can never be attributed to a session.
	ErrEventOrderNumberIsRequired = errs.NewValueIsRequiredError("event order number")

	// ErrEventDroneIDIsRequired indicates a broadcast without a drone id.
	ErrEventDroneIDIsRequired = errs.NewValueIsRequiredError("event drone id")
)

// PositionEvent is one live broadcast describing a drone's current
// coordinate, flight status, and completion percentage. The channel is not
// scoped per customer, so every event must be filtered against the current
// session before it is applied.
type PositionEvent struct { //nolint:recvcheck //using for validation
	orderNumber     string
	droneID         string
	point           kernel.GeoPoint
	status          string
	percentComplete float64

	guard guard.ConstructorGuard
}

// NewPositionEvent creates a PositionEvent from a decoded broadcast message.
// Order number, drone id and a valid coordinate are required; the completion
// percentage is clamped to [0,100] since it only drives a progress bar.
func NewPositionEvent(
	orderNumber string,
	droneID string,
	point kernel.GeoPoint,
	status string,
	percentComplete float64,
) (PositionEvent, error) {
	e := PositionEvent{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setOrderNumber(orderNumber),
		e.setDroneID(droneID),
		e.setPoint(point),
	); err != nil {
		return PositionEvent{}, err
	}

	e.percentComplete = min(max(percentComplete, 0), 100)
	return e, nil
}

// Validate ensures the event was created through the constructor.
func (e PositionEvent) Validate() error {
	return e.guard.Validate(ErrPositionEventIsNotConstructed)
}

// OrderNumber returns the order the broadcast belongs to.
func (e PositionEvent) OrderNumber() string {
	return e.orderNumber
}

// DroneID returns the reporting drone's identifier.
func (e PositionEvent) DroneID() string {
	return e.droneID
}

// Point returns the drone's reported coordinate.
func (e PositionEvent) Point() kernel.GeoPoint {
	return e.point
}

// Status returns the server-reported flight status string.
func (e PositionEvent) Status() string {
	return e.status
}

// PercentComplete returns the flight completion percentage in [0,100].
func (e PositionEvent) PercentComplete() float64 {
	return e.percentComplete
}

// IndicatesArrival reports whether the event carries the arrival status.
func (e PositionEvent) IndicatesArrival() bool {
	return e.status == StatusArrived
}

func (e *PositionEvent) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrEventOrderNumberIsRequired
	}

	e.orderNumber = orderNumber
	return nil
}

func (e *PositionEvent) setDroneID(droneID string) error {
	if droneID == "" {
		return ErrEventDroneIDIsRequired
	}

	e.droneID = droneID
	return nil
}

func (e *PositionEvent) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	e.point = point
	return nil
}
