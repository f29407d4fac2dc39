// Package ports defines the interfaces between the session controller and
// the outside world: the portal server endpoints, the live position stream,
// the map rendering surface, and the local order history store. These
// contracts enable dependency inversion and testability.
package ports

import (
	"context"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

// Geocoder resolves free-text address queries and reverse-resolves
// coordinates into display addresses. Both directions are served by the
// portal server; the client never geocodes locally.
type Geocoder interface {
	// Search returns candidate addresses for a free-text query, best match
	// first. An empty result is not an error.
	Search(ctx context.Context, query string) ([]session.Address, error)

	// Reverse resolves a coordinate into a display address.
	// Callers treat failures as best-effort and keep their prior address text.
	Reverse(ctx context.Context, point kernel.GeoPoint) (session.Address, error)
}
