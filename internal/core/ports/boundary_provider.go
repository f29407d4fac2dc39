package ports

import (
	"context"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
)

// BoundaryProvider loads the service-area polygon the portal publishes.
// The boundary is fetched at startup and refreshed periodically; a load
// failure is best-effort and leaves the previously loaded area in place.
type BoundaryProvider interface {
	ServiceArea(ctx context.Context) (kernel.ServiceArea, error)
}
