package render_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/out/render"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
)

func newRenderer() *render.JournalRenderer {
	return render.NewJournalRenderer(slog.New(slog.DiscardHandler))
}

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()

	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func TestShowDeliveryMarker(t *testing.T) {
	r := newRenderer()

	addr, err := session.NewAddress("5 Test Street", mustPoint(t, 5, 5))
	require.NoError(t, err)
	r.ShowDeliveryMarker(addr)

	snap := r.Snapshot()
	require.NotNil(t, snap.DeliveryMarker)
	assert.Equal(t, "5 Test Street", snap.DeliveryMarker.DisplayName())
}

func TestProgressPathReplacesPreview(t *testing.T) {
	r := newRenderer()
	path := []kernel.GeoPoint{mustPoint(t, 1, 1), mustPoint(t, 2, 2), mustPoint(t, 3, 3)}

	r.ShowPreviewPath(path)
	assert.Len(t, r.Snapshot().PreviewPath, 3)

	r.ShowProgressPath(session.PathSplit{
		Completed: path[:2],
		Remaining: path[1:],
	})

	snap := r.Snapshot()
	assert.Nil(t, snap.PreviewPath)
	assert.Len(t, snap.CompletedPath, 2)
	assert.Len(t, snap.RemainingPath, 2)
}

func TestClearFlightOverlaysKeepsMarkers(t *testing.T) {
	r := newRenderer()

	addr, err := session.NewAddress("5 Test Street", mustPoint(t, 5, 5))
	require.NoError(t, err)
	r.ShowDeliveryMarker(addr)
	r.ShowDroneMarker("DRONE-07", mustPoint(t, 3, 3))
	r.ShowProgress(40)

	r.ClearFlightOverlays()

	snap := r.Snapshot()
	assert.False(t, snap.DroneShown)
	assert.Zero(t, snap.ProgressPercent)
	assert.NotNil(t, snap.DeliveryMarker)
}

func TestClearKeepsBoundary(t *testing.T) {
	r := newRenderer()

	ring := []kernel.GeoPoint{
		mustPoint(t, 0, 0), mustPoint(t, 0, 10), mustPoint(t, 10, 10), mustPoint(t, 10, 0),
	}
	area, err := kernel.NewServiceArea(ring)
	require.NoError(t, err)

	r.ShowBoundary(area)
	r.ShowDroneMarker("DRONE-07", mustPoint(t, 3, 3))
	r.ApplyView(ports.View{ShowTracking: true})

	r.Clear()

	snap := r.Snapshot()
	assert.True(t, snap.Boundary.IsLoaded())
	assert.False(t, snap.DroneShown)
	assert.Equal(t, ports.View{}, snap.View)
}

func TestSnapshotIsACopy(t *testing.T) {
	r := newRenderer()
	path := []kernel.GeoPoint{mustPoint(t, 1, 1), mustPoint(t, 2, 2)}
	r.ShowPreviewPath(path)

	snap := r.Snapshot()
	snap.PreviewPath[0] = mustPoint(t, 9, 9)

	assert.Equal(t, mustPoint(t, 1, 1), r.Snapshot().PreviewPath[0])
}
