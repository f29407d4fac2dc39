package ports

import (
	"context"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

// DeliveryPlanner asks the server to compute a delivery plan for a
// medication and a destination: the dispatching service point, the reserved
// drone, the flight path, and ETA/refrigeration metadata. The client never
// computes paths or assigns drones itself.
type DeliveryPlanner interface {
	CalculateDelivery(
		ctx context.Context,
		medicationID string,
		target kernel.GeoPoint,
	) (session.DeliveryPlan, error)
}
