package ports

import (
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

// View describes which portal sections are visible for a lifecycle state.
// The state-to-view binding is total and idempotent: every state maps to
// exactly one View, and re-applying the same View is a no-op visually.
type View struct {
	ShowAddressSearch    bool
	ShowLocationConfirm  bool
	ShowMedicationPicker bool
	ShowOrderForm        bool
	ShowTracking         bool
	ShowPickupConfirm    bool
	ShowCompleted        bool
}

// MapRenderer is the rendering surface the controller drives. It owns the
// derived overlay set (markers, polylines, boundary) exclusively; the
// controller never inspects it, only issues mutations.
//
// All methods are side effects with no failure mode. Rendering problems are
// the renderer's own concern and must never push the session into an
// inconsistent state.
type MapRenderer interface {
	// ApplyView switches the visible portal sections for the given state.
	ApplyView(view View)

	// SetCenter pans the map to the given point.
	SetCenter(point kernel.GeoPoint)

	// ShowBoundary draws the service-area polygon.
	ShowBoundary(area kernel.ServiceArea)

	// ShowDeliveryMarker places or moves the delivery-destination marker.
	ShowDeliveryMarker(address session.Address)

	// ShowServicePointMarker places the dispatching service point marker.
	ShowServicePointMarker(name string, point kernel.GeoPoint)

	// ShowPreviewPath draws the computed plan path in the preview style,
	// replacing any prior preview.
	ShowPreviewPath(path []kernel.GeoPoint)

	// ShowProgressPath replaces the preview or prior progress rendering with
	// the faded split: the completed prefix muted, the remaining suffix
	// prominent.
	ShowProgressPath(split session.PathSplit)

	// ShowDroneMarker places or moves the live drone marker.
	ShowDroneMarker(droneID string, point kernel.GeoPoint)

	// ShowProgress updates the completion indicator, percent in [0,100].
	ShowProgress(percent float64)

	// ClearFlightOverlays removes the drone marker and all path polylines.
	// The return flight is not shown to the customer.
	ClearFlightOverlays()

	// Clear removes every overlay except the boundary. Used on reset so no
	// stale overlay survives into the next session.
	Clear()
}
