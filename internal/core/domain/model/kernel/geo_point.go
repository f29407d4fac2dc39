package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax float64 = 180

	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6371e3
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate with validated latitude and
// longitude. GeoPoint is an immutable value object; the zero value is invalid
// and fails validation - use the constructor to create instances.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(55.9445, -3.1892)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(p) // Output: GeoPoint(55.9445,-3.1892)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]. Returns an error if either is out of bounds
// or not a finite number.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through its constructor.
// Returns ErrGeoPointIsNotConstructed for zero-value points.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation in the form
// "GeoPoint(lat,lng)". Implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%v,%v)", p.lat, p.lng)
}

// IsEqual compares two points for exact coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceMeters calculates the great-circle distance to another point in
// meters using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	a, _ := kernel.NewGeoPoint(55.9445, -3.1892)
//	b, _ := kernel.NewGeoPoint(55.9446, -3.1892)
//	d, _ := a.DistanceMeters(b) // roughly 11 meters
func (p GeoPoint) DistanceMeters(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	phi1 := p.lat * math.Pi / 180
	phi2 := other.lat * math.Pi / 180
	deltaPhi := (other.lat - p.lat) * math.Pi / 180
	deltaLambda := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// FlatDistance returns the Euclidean distance to another point in degrees.
// It is not a geodesic measure and is only meaningful for comparing which of
// several nearby points is closest, as the flight-path progress scan does.
func (p GeoPoint) FlatDistance(other GeoPoint) float64 {
	dLat := p.lat - other.lat
	dLng := p.lng - other.lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// setLat sets the latitude with validation.
// Note: pointer receiver is used intentionally for self-encapsulated
// validation during construction, while all public methods use value receivers.
func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with validation.
func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = lng
	return nil
}
