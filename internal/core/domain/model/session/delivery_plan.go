package session

import (
	"errors"
	"fmt"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

var (
	// ErrDeliveryPlanIsNotConstructed is returned when a DeliveryPlan was not
	// created through the NewDeliveryPlan constructor.
	ErrDeliveryPlanIsNotConstructed = errors.New(
		"DeliveryPlan must be created via NewDeliveryPlan constructor")

	// ErrServicePointNameIsRequired indicates a missing service point name.
	ErrServicePointNameIsRequired = errs.NewValueIsRequiredError("service point name")

	// ErrAssignedDroneIsRequired indicates a missing drone assignment.
	ErrAssignedDroneIsRequired = errs.NewValueIsRequiredError("assigned drone id")

	// ErrPlanPathIsTooShort indicates a flight path with fewer than two points,
	// which cannot describe a movement from the service point to the customer.
	ErrPlanPathIsTooShort = errs.NewValueIsInvalidErrorWithCause("plan path",
		errors.New("a flight path needs at least 2 points"))
)

// DeliveryPlan is the server-computed bundle for one candidate order: the
// dispatching service point, the assigned drone, the precomputed flight path,
// and ETA/refrigeration metadata. The plan exists only between medication
// confirmation and order placement; placing the order copies its path into
// the session's FlightPath and discards the plan.
type DeliveryPlan struct { //nolint:recvcheck //using for validation
	servicePointName     string
	servicePointLocation kernel.GeoPoint
	assignedDroneID      string
	path                 []kernel.GeoPoint
	requiresRefrigeration bool
	distanceKm           float64
	etaMinutes           float64

	guard guard.ConstructorGuard
}

// NewDeliveryPlan creates a plan from a calculate-delivery response.
// The path must contain at least two properly constructed points, and both
// the service point name and the drone assignment are required.
func NewDeliveryPlan(
	servicePointName string,
	servicePointLocation kernel.GeoPoint,
	assignedDroneID string,
	path []kernel.GeoPoint,
	requiresRefrigeration bool,
	distanceKm float64,
	etaMinutes float64,
) (DeliveryPlan, error) {
	plan := DeliveryPlan{
		requiresRefrigeration: requiresRefrigeration,
		distanceKm:            distanceKm,
		etaMinutes:            etaMinutes,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		plan.setServicePointName(servicePointName),
		plan.setServicePointLocation(servicePointLocation),
		plan.setAssignedDroneID(assignedDroneID),
		plan.setPath(path),
	); err != nil {
		return DeliveryPlan{}, err
	}

	return plan, nil
}

// Validate ensures the plan was created through the constructor.
func (p DeliveryPlan) Validate() error {
	return p.guard.Validate(ErrDeliveryPlanIsNotConstructed)
}

// ServicePointName returns the name of the dispatching service point.
func (p DeliveryPlan) ServicePointName() string {
	return p.servicePointName
}

// ServicePointLocation returns the service point coordinate.
func (p DeliveryPlan) ServicePointLocation() kernel.GeoPoint {
	return p.servicePointLocation
}

// AssignedDroneID returns the identifier of the drone the server reserved.
func (p DeliveryPlan) AssignedDroneID() string {
	return p.assignedDroneID
}

// Path returns a copy of the precomputed flight path, ordered from the
// service point to the delivery location.
func (p DeliveryPlan) Path() []kernel.GeoPoint {
	out := make([]kernel.GeoPoint, len(p.path))
	copy(out, p.path)
	return out
}

// RequiresRefrigeration reports whether the medication needs a cooled bay.
func (p DeliveryPlan) RequiresRefrigeration() bool {
	return p.requiresRefrigeration
}

// DistanceKm returns the planned flight distance in kilometers.
func (p DeliveryPlan) DistanceKm() float64 {
	return p.distanceKm
}

// EtaMinutes returns the estimated flight time in minutes.
func (p DeliveryPlan) EtaMinutes() float64 {
	return p.etaMinutes
}

// String returns a short description for logging.
func (p DeliveryPlan) String() string {
	return fmt.Sprintf("DeliveryPlan(%s, drone %s, %d points)",
		p.servicePointName, p.assignedDroneID, len(p.path))
}

func (p *DeliveryPlan) setServicePointName(name string) error {
	if name == "" {
		return ErrServicePointNameIsRequired
	}

	p.servicePointName = name
	return nil
}

func (p *DeliveryPlan) setServicePointLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	p.servicePointLocation = location
	return nil
}

func (p *DeliveryPlan) setAssignedDroneID(droneID string) error {
	if droneID == "" {
		return ErrAssignedDroneIsRequired
	}

	p.assignedDroneID = droneID
	return nil
}

func (p *DeliveryPlan) setPath(path []kernel.GeoPoint) error {
	if len(path) < 2 {
		return ErrPlanPathIsTooShort
	}

	for _, point := range path {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	p.path = make([]kernel.GeoPoint, len(path))
	copy(p.path, path)
	return nil
}
