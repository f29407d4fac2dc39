package kernel_test

import (
	"testing"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareArea(t *testing.T) kernel.ServiceArea {
	t.Helper()

	ring := make([]kernel.GeoPoint, 0, 4)
	for _, c := range [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}} {
		p, err := kernel.NewGeoPoint(c[0], c[1])
		require.NoError(t, err)
		ring = append(ring, p)
	}

	area, err := kernel.NewServiceArea(ring)
	require.NoError(t, err)
	return area
}

func TestServiceArea_Contains(t *testing.T) {
	area := squareArea(t)

	testCases := []struct {
		name   string
		lat    float64
		lng    float64
		inside bool
	}{
		{"center is inside", 5, 5, true},
		{"east of the square is outside", 5, 15, false},
		{"south-west of the square is outside", -1, -1, false},
		{"north of the square is outside", 15, 5, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tc.lat, tc.lng)
			require.NoError(t, err)
			assert.Equal(t, tc.inside, area.Contains(p))
		})
	}
}

func TestServiceArea_ClosedRingBehavesLikeOpenRing(t *testing.T) {
	coords := [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	ring := make([]kernel.GeoPoint, 0, len(coords))
	for _, c := range coords {
		p, err := kernel.NewGeoPoint(c[0], c[1])
		require.NoError(t, err)
		ring = append(ring, p)
	}

	closed, err := kernel.NewServiceArea(ring)
	require.NoError(t, err)

	inside, err := kernel.NewGeoPoint(5, 5)
	require.NoError(t, err)
	outside, err := kernel.NewGeoPoint(5, 15)
	require.NoError(t, err)

	assert.True(t, closed.Contains(inside))
	assert.False(t, closed.Contains(outside))
}

func TestServiceArea_FailsOpenWhenNotLoaded(t *testing.T) {
	var area kernel.ServiceArea
	assert.False(t, area.IsLoaded())

	p, err := kernel.NewGeoPoint(89, 179)
	require.NoError(t, err)
	assert.True(t, area.Contains(p))
}

func TestNewServiceArea_RejectsDegenerateRing(t *testing.T) {
	a, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(1, 1)
	require.NoError(t, err)

	_, err = kernel.NewServiceArea([]kernel.GeoPoint{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrServiceAreaRingTooSmall)
}

func TestNewServiceArea_RejectsUnconstructedVertices(t *testing.T) {
	a, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(0, 10)
	require.NoError(t, err)

	var zero kernel.GeoPoint
	_, err = kernel.NewServiceArea([]kernel.GeoPoint{a, b, zero})
	require.Error(t, err)
}

func TestServiceArea_RingReturnsCopy(t *testing.T) {
	area := squareArea(t)

	ring := area.Ring()
	require.Len(t, ring, 4)

	other, err := kernel.NewGeoPoint(50, 50)
	require.NoError(t, err)
	ring[0] = other

	inside, err := kernel.NewGeoPoint(5, 5)
	require.NoError(t, err)
	assert.True(t, area.Contains(inside), "mutating the returned ring must not affect the area")
}
