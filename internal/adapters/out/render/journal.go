// Package render provides the headless map-rendering adapter. Instead of a
// browser map it keeps the derived overlay set in memory and journals every
// mutation, which is enough for a terminal UI, for tests, and for the
// session status endpoint.
package render

import (
	"log/slog"
	"sync"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
)

// Snapshot is a copy of the current overlay set and applied view.
type Snapshot struct {
	View             ports.View
	Center           kernel.GeoPoint
	Boundary         kernel.ServiceArea
	DeliveryMarker   *session.Address
	ServicePointName string
	PreviewPath      []kernel.GeoPoint
	CompletedPath    []kernel.GeoPoint
	RemainingPath    []kernel.GeoPoint
	DroneID          string
	DronePoint       kernel.GeoPoint
	DroneShown       bool
	ProgressPercent  float64
}

// JournalRenderer implements ports.MapRenderer by recording the overlay set
// and logging every change. Safe for concurrent use; the controller and
// tests may snapshot from different goroutines.
type JournalRenderer struct {
	log *slog.Logger

	mu    sync.Mutex
	state Snapshot
}

var _ ports.MapRenderer = (*JournalRenderer)(nil)

// NewJournalRenderer creates a renderer with an empty overlay set.
func NewJournalRenderer(logger *slog.Logger) *JournalRenderer {
	if logger == nil {
		logger = slog.Default()
	}

	return &JournalRenderer{
		log: logger.With("component", "map-renderer"),
	}
}

// Snapshot returns a copy of the current overlay set.
func (r *JournalRenderer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.state
	snap.PreviewPath = copyPoints(r.state.PreviewPath)
	snap.CompletedPath = copyPoints(r.state.CompletedPath)
	snap.RemainingPath = copyPoints(r.state.RemainingPath)
	if r.state.DeliveryMarker != nil {
		marker := *r.state.DeliveryMarker
		snap.DeliveryMarker = &marker
	}
	return snap
}

// ApplyView implements ports.MapRenderer.
func (r *JournalRenderer) ApplyView(view ports.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.View == view {
		return
	}

	r.state.View = view
	r.log.Info("view applied",
		"search", view.ShowAddressSearch, "order_form", view.ShowOrderForm,
		"tracking", view.ShowTracking, "pickup", view.ShowPickupConfirm,
		"completed", view.ShowCompleted)
}

// SetCenter implements ports.MapRenderer.
func (r *JournalRenderer) SetCenter(point kernel.GeoPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Center = point
	r.log.Debug("map centered", "point", point.String())
}

// ShowBoundary implements ports.MapRenderer.
func (r *JournalRenderer) ShowBoundary(area kernel.ServiceArea) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Boundary = area
	r.log.Info("boundary drawn", "vertices", len(area.Ring()))
}

// ShowDeliveryMarker implements ports.MapRenderer.
func (r *JournalRenderer) ShowDeliveryMarker(address session.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.DeliveryMarker = &address
	r.log.Info("delivery marker placed",
		"address", address.DisplayName(), "point", address.Point().String())
}

// ShowServicePointMarker implements ports.MapRenderer.
func (r *JournalRenderer) ShowServicePointMarker(name string, point kernel.GeoPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.ServicePointName = name
	r.log.Info("service point marker placed", "name", name, "point", point.String())
}

// ShowPreviewPath implements ports.MapRenderer.
func (r *JournalRenderer) ShowPreviewPath(path []kernel.GeoPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.PreviewPath = copyPoints(path)
	r.state.CompletedPath = nil
	r.state.RemainingPath = nil
	r.log.Info("preview path drawn", "points", len(path))
}

// ShowProgressPath implements ports.MapRenderer.
func (r *JournalRenderer) ShowProgressPath(split session.PathSplit) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.PreviewPath = nil
	r.state.CompletedPath = copyPoints(split.Completed)
	r.state.RemainingPath = copyPoints(split.Remaining)
	r.log.Debug("progress path drawn",
		"completed", len(split.Completed), "remaining", len(split.Remaining))
}

// ShowDroneMarker implements ports.MapRenderer.
func (r *JournalRenderer) ShowDroneMarker(droneID string, point kernel.GeoPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.DroneID = droneID
	r.state.DronePoint = point
	r.state.DroneShown = true
	r.log.Debug("drone marker moved", "drone", droneID, "point", point.String())
}

// ShowProgress implements ports.MapRenderer.
func (r *JournalRenderer) ShowProgress(percent float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.ProgressPercent = percent
	r.log.Debug("progress updated", "percent", percent)
}

// ClearFlightOverlays implements ports.MapRenderer.
func (r *JournalRenderer) ClearFlightOverlays() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearFlightLocked()
	r.log.Info("flight overlays removed")
}

// Clear implements ports.MapRenderer. The boundary survives: it belongs to
// the service, not to the session being reset.
func (r *JournalRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	boundary := r.state.Boundary
	r.state = Snapshot{Boundary: boundary}
	r.log.Info("overlays cleared")
}

func (r *JournalRenderer) clearFlightLocked() {
	r.state.DroneID = ""
	r.state.DronePoint = kernel.GeoPoint{}
	r.state.DroneShown = false
	r.state.PreviewPath = nil
	r.state.CompletedPath = nil
	r.state.RemainingPath = nil
	r.state.ProgressPercent = 0
}

func copyPoints(points []kernel.GeoPoint) []kernel.GeoPoint {
	if points == nil {
		return nil
	}

	out := make([]kernel.GeoPoint, len(points))
	copy(out, points)
	return out
}
