package kernel

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

// ErrServiceAreaRingTooSmall is returned when a boundary ring has fewer than
// three vertices and therefore encloses no area.
var ErrServiceAreaRingTooSmall = errs.NewValueIsInvalidErrorWithCause(
	"service area ring", errors.New("a boundary ring needs at least 3 vertices"))

// ServiceArea is the geographic polygon within which deliveries are permitted,
// defined by an ordered ring of boundary vertices.
//
// The zero value is the "not yet loaded" area: it reports every point as
// inside. The service-area check deliberately fails open so a slow or failed
// boundary download never blocks the ordering flow; the server re-validates
// the destination anyway.
type ServiceArea struct {
	ring []GeoPoint
}

// NewServiceArea creates a ServiceArea from an ordered boundary ring.
// The ring must contain at least three properly constructed vertices.
// The ring may be either open or closed (first vertex repeated at the end);
// the containment test handles both forms identically.
func NewServiceArea(ring []GeoPoint) (ServiceArea, error) {
	if len(ring) < 3 {
		return ServiceArea{}, ErrServiceAreaRingTooSmall
	}

	for _, p := range ring {
		if err := p.Validate(); err != nil {
			return ServiceArea{}, err
		}
	}

	vertices := make([]GeoPoint, len(ring))
	copy(vertices, ring)

	return ServiceArea{ring: vertices}, nil
}

// IsLoaded reports whether a boundary ring has been attached.
func (a ServiceArea) IsLoaded() bool {
	return len(a.ring) > 0
}

// Ring returns a copy of the boundary vertices.
func (a ServiceArea) Ring() []GeoPoint {
	out := make([]GeoPoint, len(a.ring))
	copy(out, a.ring)
	return out
}

// Contains reports whether the point lies inside the boundary polygon using
// the ray-casting parity test: an edge toggles the inside flag when it
// straddles the point's latitude and its longitude-intersection at that
// latitude exceeds the point's longitude.
//
// A point lying exactly on a boundary edge has implementation-defined parity;
// the portal treats that ambiguity as acceptable because boundary vertices
// come from a hand-drawn city outline, not survey data.
//
// An unloaded area contains every point (fail open).
func (a ServiceArea) Contains(p GeoPoint) bool {
	if !a.IsLoaded() {
		return true
	}

	x := p.Lng()
	y := p.Lat()

	inside := false
	for i, j := 0, len(a.ring)-1; i < len(a.ring); j, i = i, i+1 {
		xi, yi := a.ring[i].Lng(), a.ring[i].Lat()
		xj, yj := a.ring[j].Lng(), a.ring[j].Lat()

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}
