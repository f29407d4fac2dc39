package session

import (
	"fmt"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

// State represents the customer-visible lifecycle of one order session.
// It implements a state machine with defined transitions so the portal
// always moves through the ordering workflow in a valid sequence.
//
// State transitions:
//
//	Initial ──> Placing ──> InTransit ──> Arrived ──> Collected
//	   ^                                                  │
//	   └────────────────── reset (from any state) ────────┘
//
// State is a value object that validates transitions and provides the wire
// names used by the portal UI and the server.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Initial is the address-selection step of a fresh session.
	Initial

	// Placing means the delivery location is confirmed and the customer is
	// choosing a medication and previewing the delivery plan.
	Placing

	// InTransit means the order was accepted and a drone is flying.
	InTransit

	// Arrived means the drone reported arrival and the customer can confirm
	// pickup.
	Arrived

	// Collected is the final state: pickup was confirmed by the server.
	Collected
)

// getStateStrings returns the wire name for every State value.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "UNKNOWN",
		Initial:   "INITIAL",
		Placing:   "PLACING",
		InTransit: "IN_TRANSIT",
		Arrived:   "ARRIVED",
		Collected: "COLLECTED",
	}
}

// getValidStateStrings returns only the valid State values.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Initial:   "INITIAL",
		Placing:   "PLACING",
		InTransit: "IN_TRANSIT",
		Arrived:   "ARRIVED",
		Collected: "COLLECTED",
	}
}

// Validate checks if the State value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the wire name of the state, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTracking reports whether the session is following a live drone.
// Position events are only applicable in tracking states.
func (s State) IsTracking() bool {
	return s == InTransit || s == Arrived
}

// ConfirmLocation transitions the state to Placing.
//
// Valid transitions:
//   - Initial -> Placing (delivery location confirmed)
//
// Returns (0, error) if the transition is not allowed from the current state.
func (s State) ConfirmLocation() (State, error) {
	if s != Initial {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to confirm a location", s.String()),
		)
	}

	return Placing, nil
}

// BeginTransit transitions the state to InTransit.
//
// Valid transitions:
//   - Placing -> InTransit (order placed successfully)
//
// Returns (0, error) if the transition is not allowed from the current state.
func (s State) BeginTransit() (State, error) {
	if s != Placing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to begin transit", s.String()),
		)
	}

	return InTransit, nil
}

// MarkArrived transitions the state to Arrived.
//
// Valid transitions:
//   - InTransit -> Arrived (drone reported arrival)
//
// Returns (0, error) if the transition is not allowed from the current state.
func (s State) MarkArrived() (State, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to mark arrived", s.String()),
		)
	}

	return Arrived, nil
}

// CompletePickup transitions the state to Collected.
//
// Valid transitions:
//   - Arrived -> Collected (pickup confirmed by the server)
//
// Collected is a final state with no further transitions.
// Returns (0, error) if the transition is not allowed from the current state.
func (s State) CompletePickup() (State, error) {
	if s != Arrived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to complete pickup", s.String()),
		)
	}

	return Collected, nil
}
