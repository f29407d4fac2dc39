// Package kernel provides core domain primitives shared across the portal
// client's domain model.
//
// The package includes:
//   - GeoPoint: a validated geographic coordinate with haversine distance
//   - ServiceArea: the delivery boundary polygon with a fail-open
//     point-in-polygon containment test
//   - UUID: a value object for unique identifiers
//
// These primitives are immutable, enforce their invariants at construction,
// and are safe for concurrent use.
package kernel
