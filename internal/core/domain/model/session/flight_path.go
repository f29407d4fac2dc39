package session

import (
	"errors"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

// ErrFlightPathIsEmpty indicates an attempt to track progress along a path
// with no points.
var ErrFlightPathIsEmpty = errs.NewValueIsInvalidErrorWithCause("flight path",
	errors.New("a flight path needs at least 1 point"))

// PathSplit is the result of advancing the path cursor: the prefix the drone
// has already covered and the suffix still ahead of it. The two slices share
// the boundary point so the rendered polylines join seamlessly.
type PathSplit struct {
	Completed []kernel.GeoPoint
	Remaining []kernel.GeoPoint
}

// FlightPath tracks a drone's visual progress along the precomputed route.
// The point sequence is fixed when transit begins; only the cursor moves.
//
// The cursor is a visual approximation, not true progress: it assumes the
// drone stays close to the precomputed path and may mis-place the split if
// the drone deviates significantly.
type FlightPath struct {
	points []kernel.GeoPoint
	cursor int
}

// NewFlightPath creates a FlightPath over the given points with the cursor at
// the start. Points must be non-empty and properly constructed.
func NewFlightPath(points []kernel.GeoPoint) (*FlightPath, error) {
	if len(points) == 0 {
		return nil, ErrFlightPathIsEmpty
	}

	for _, p := range points {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	fixed := make([]kernel.GeoPoint, len(points))
	copy(fixed, points)

	return &FlightPath{points: fixed}, nil
}

// Start returns the first path point, where the drone marker is initially
// placed when transit begins.
func (f *FlightPath) Start() kernel.GeoPoint {
	return f.points[0]
}

// Points returns a copy of the full path.
func (f *FlightPath) Points() []kernel.GeoPoint {
	out := make([]kernel.GeoPoint, len(f.points))
	copy(out, f.points)
	return out
}

// Cursor returns the index of the path point nearest the last reported drone
// position.
func (f *FlightPath) Cursor() int {
	return f.cursor
}

// Advance moves the cursor to the path point nearest the drone's reported
// coordinate and returns the resulting completed/remaining split.
//
// Nearest is a linear scan over flat (Euclidean, degree-space) distance with
// ties broken by first occurrence. Path points are densely and monotonically
// ordered along the route, so the scan places the cursor correctly without a
// geodesic measure.
func (f *FlightPath) Advance(drone kernel.GeoPoint) PathSplit {
	closest := 0
	minDistance := drone.FlatDistance(f.points[0])

	for i := 1; i < len(f.points); i++ {
		if d := drone.FlatDistance(f.points[i]); d < minDistance {
			minDistance = d
			closest = i
		}
	}

	f.cursor = closest

	completed := make([]kernel.GeoPoint, closest+1)
	copy(completed, f.points[:closest+1])

	remaining := make([]kernel.GeoPoint, len(f.points)-closest)
	copy(remaining, f.points[closest:])

	return PathSplit{Completed: completed, Remaining: remaining}
}
