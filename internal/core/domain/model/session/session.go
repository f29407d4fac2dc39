package session

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

var (
	// ErrOrderSessionIsNotConstructed is returned when an OrderSession was not
	// created through the NewOrderSession constructor.
	ErrOrderSessionIsNotConstructed = errors.New(
		"OrderSession must be created via NewOrderSession constructor")

	// ErrAddressIsNotSelected indicates an operation that needs a selected
	// address before any was chosen from the geocoder results.
	ErrAddressIsNotSelected = errs.NewValueIsRequiredError("selected address")

	// ErrLocationOutsideServiceArea indicates the confirmed point lies outside
	// the delivery boundary polygon.
	ErrLocationOutsideServiceArea = errs.NewValueIsInvalidErrorWithCause(
		"delivery location", errors.New("point is outside the service area"))

	// ErrMedicationIsNotSelected indicates a plan or order operation before a
	// medication was chosen.
	ErrMedicationIsNotSelected = errs.NewValueIsRequiredError("medication selection")

	// ErrDeliveryPlanIsMissing indicates an order placement without a computed
	// delivery plan.
	ErrDeliveryPlanIsMissing = errs.NewValueIsRequiredError("delivery plan")

	// ErrOrderNumberIsRequired indicates a transit or pickup operation without
	// an order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")

	// ErrEventNotApplicable marks a position event that does not belong to
	// this session in its current state. Callers drop such events silently;
	// the broadcast channel is shared by all customers, so foreign and stale
	// events are expected traffic, not faults.
	ErrEventNotApplicable = errors.New("position event does not apply to this session")
)

// OrderSession is the aggregate owning one customer's order lifecycle, from
// address selection to confirmed pickup. All mutations are pure state
// changes; network and rendering side effects live with the controller.
//
// Invariants:
//   - orderNumber is non-empty exactly in the InTransit, Arrived and
//     Collected states
//   - the delivery plan exists only between medication confirmation and
//     order placement
//   - the flight path is fixed when transit begins and never mutated after
type OrderSession struct {
	// id identifies this session locally (logging, history records)
	id kernel.UUID

	// state is the current lifecycle state
	state State

	// orderNumber is the server-issued identifier, empty until placement
	orderNumber string

	// selected is the delivery address (nil until one is chosen)
	selected *Address

	// originalPoint is the geocoded coordinate at selection time, kept to
	// measure how far the customer dragged the map before confirming
	originalPoint kernel.GeoPoint

	// medicationID is the chosen catalog item, empty until selection
	medicationID string

	// plan is the computed delivery plan (nil outside its invariant window)
	plan *DeliveryPlan

	// flight tracks visual progress along the placed order's path
	flight *FlightPath

	// assignedDroneID survives the plan so the marker popup can name the drone
	assignedDroneID string

	// isConstructed ensures the session was created via NewOrderSession
	isConstructed bool
}

// NewOrderSession creates a fresh session in the Initial state.
// Reset is modeled by discarding the session and constructing a new one, so
// stale fields can never leak across orders.
func NewOrderSession() *OrderSession {
	return &OrderSession{
		id:            kernel.NewUUID(),
		state:         Initial,
		isConstructed: true,
	}
}

// Validate ensures the session was created through NewOrderSession.
func (s *OrderSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrOrderSessionIsNotConstructed
	}

	return nil
}

// ID returns the local session identifier.
func (s *OrderSession) ID() kernel.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *OrderSession) State() State {
	return s.state
}

// OrderNumber returns the server-issued order identifier, or "" before
// placement.
func (s *OrderSession) OrderNumber() string {
	return s.orderNumber
}

// SelectedAddress returns the delivery address, or nil before selection.
func (s *OrderSession) SelectedAddress() *Address {
	return s.selected
}

// OriginalPoint returns the geocoded coordinate captured at address
// selection time.
func (s *OrderSession) OriginalPoint() kernel.GeoPoint {
	return s.originalPoint
}

// MedicationID returns the chosen catalog item id, or "" before selection.
func (s *OrderSession) MedicationID() string {
	return s.medicationID
}

// Plan returns the computed delivery plan, or nil outside its window.
func (s *OrderSession) Plan() *DeliveryPlan {
	return s.plan
}

// Flight returns the tracked flight path, or nil before transit.
func (s *OrderSession) Flight() *FlightPath {
	return s.flight
}

// AssignedDroneID returns the reserved drone's identifier, or "" before a
// plan was computed.
func (s *OrderSession) AssignedDroneID() string {
	return s.assignedDroneID
}

// SelectAddress stores a geocoder candidate as the working delivery address
// and remembers its coordinate for the later moved-distance check. Allowed
// only while choosing the address (Initial state); the location is not yet
// confirmed and the customer may still adjust the exact point.
func (s *OrderSession) SelectAddress(addr Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}

	if s.state != Initial {
		return stateError(s.state, "select an address")
	}

	s.selected = &addr
	s.originalPoint = addr.Point()
	return nil
}

// ClearAddress discards the working address so the customer can start the
// search over. Allowed only in the Initial state.
func (s *OrderSession) ClearAddress() error {
	if s.state != Initial {
		return stateError(s.state, "clear the address")
	}

	s.selected = nil
	s.originalPoint = kernel.GeoPoint{}
	return nil
}

// ConfirmLocation fixes the final delivery coordinate and transitions
// Initial -> Placing. The final point is whatever the customer adjusted the
// map to; displayName is the (possibly re-resolved) address text for it.
// Rejects without a state change when no address was selected or the point
// lies outside the service area.
func (s *OrderSession) ConfirmLocation(final kernel.GeoPoint, displayName string, area kernel.ServiceArea) error {
	if s.selected == nil {
		return ErrAddressIsNotSelected
	}

	if err := final.Validate(); err != nil {
		return err
	}

	if !area.Contains(final) {
		return ErrLocationOutsideServiceArea
	}

	newState, err := s.state.ConfirmLocation()
	if err != nil {
		return err
	}

	confirmed, err := NewAddress(displayName, final)
	if err != nil {
		return err
	}

	s.selected = &confirmed
	s.state = newState
	return nil
}

// SelectMedication records the chosen catalog item. Any previously computed
// plan is discarded so the preview always matches the selection. Allowed only
// in the Placing state.
func (s *OrderSession) SelectMedication(medicationID string) error {
	if medicationID == "" {
		return ErrMedicationIsNotSelected
	}

	if s.state != Placing {
		return stateError(s.state, "select a medication")
	}

	s.medicationID = medicationID
	s.plan = nil
	s.assignedDroneID = ""
	return nil
}

// AttachPlan stores the server-computed delivery plan for the current
// medication and destination. Allowed only in the Placing state after a
// medication was selected.
func (s *OrderSession) AttachPlan(plan DeliveryPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	if s.state != Placing {
		return stateError(s.state, "attach a delivery plan")
	}

	if s.medicationID == "" {
		return ErrMedicationIsNotSelected
	}

	s.plan = &plan
	s.assignedDroneID = plan.AssignedDroneID()
	return nil
}

// BeginTransit records the accepted order and transitions
// Placing -> InTransit. The plan's path becomes the immutable flight path
// with the cursor at its start, and the plan itself is discarded.
func (s *OrderSession) BeginTransit(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	if s.plan == nil {
		return ErrDeliveryPlanIsMissing
	}

	newState, err := s.state.BeginTransit()
	if err != nil {
		return err
	}

	flight, err := NewFlightPath(s.plan.Path())
	if err != nil {
		return err
	}

	s.orderNumber = orderNumber
	s.flight = flight
	s.plan = nil
	s.state = newState
	return nil
}

// ApplyPosition applies a live broadcast to the session.
//
// The mandatory filter drops (with ErrEventNotApplicable) any event that
// does not satisfy all of: a current order exists, the event's order number
// matches it, and the session is in a tracking state. The channel carries
// every customer's drones, so this is the only thing keeping foreign and
// stale broadcasts out of the session.
//
// An accepted event advances the flight-path cursor and, when the event
// signals arrival while still in transit, transitions InTransit -> Arrived.
// The returned arrived flag is true only on that transition.
func (s *OrderSession) ApplyPosition(event PositionEvent) (PathSplit, bool, error) {
	if err := event.Validate(); err != nil {
		return PathSplit{}, false, err
	}

	if s.orderNumber == "" || event.OrderNumber() != s.orderNumber || !s.state.IsTracking() {
		return PathSplit{}, false, ErrEventNotApplicable
	}

	split := s.flight.Advance(event.Point())

	arrived := false
	if event.IndicatesArrival() && s.state == InTransit {
		newState, err := s.state.MarkArrived()
		if err != nil {
			return PathSplit{}, false, err
		}
		s.state = newState
		arrived = true
	}

	return split, arrived, nil
}

// CompletePickup transitions Arrived -> Collected after the server accepted
// the pickup confirmation.
func (s *OrderSession) CompletePickup() error {
	if s.orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	newState, err := s.state.CompletePickup()
	if err != nil {
		return err
	}

	s.state = newState
	return nil
}

// stateError builds the uniform rejection for operations attempted in the
// wrong lifecycle state.
func stateError(s State, action string) error {
	return errs.NewValueIsInvalidErrorWithCause("state is invalid",
		errors.New(s.String()+" is not a valid state to "+action))
}
