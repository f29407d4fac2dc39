package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryPlan(t *testing.T) {
	origin := mustPoint(t, 1, 1)
	path := pathPoints(t, [2]float64{1, 1}, [2]float64{2, 2})

	plan, err := NewDeliveryPlan("Central Pharmacy Hub", origin, "DRONE-07",
		path, true, 4.2, 6.5)
	require.NoError(t, err)

	assert.NoError(t, plan.Validate())
	assert.Equal(t, "Central Pharmacy Hub", plan.ServicePointName())
	assert.Equal(t, origin, plan.ServicePointLocation())
	assert.Equal(t, "DRONE-07", plan.AssignedDroneID())
	assert.Equal(t, path, plan.Path())
	assert.True(t, plan.RequiresRefrigeration())
	assert.InDelta(t, 4.2, plan.DistanceKm(), 1e-9)
	assert.InDelta(t, 6.5, plan.EtaMinutes(), 1e-9)
}

func TestNewDeliveryPlanValidation(t *testing.T) {
	origin := mustPoint(t, 1, 1)
	path := pathPoints(t, [2]float64{1, 1}, [2]float64{2, 2})

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "missing service point name",
			run: func() error {
				_, err := NewDeliveryPlan("", origin, "DRONE-07", path, false, 1, 1)
				return err
			},
			wantErr: ErrServicePointNameIsRequired,
		},
		{
			name: "missing drone",
			run: func() error {
				_, err := NewDeliveryPlan("Hub", origin, "", path, false, 1, 1)
				return err
			},
			wantErr: ErrAssignedDroneIsRequired,
		},
		{
			name: "path too short",
			run: func() error {
				_, err := NewDeliveryPlan("Hub", origin, "DRONE-07",
					path[:1], false, 1, 1)
				return err
			},
			wantErr: ErrPlanPathIsTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}
}

func TestDeliveryPlanPathIsCopied(t *testing.T) {
	path := pathPoints(t, [2]float64{1, 1}, [2]float64{2, 2})

	plan, err := NewDeliveryPlan("Hub", mustPoint(t, 1, 1), "DRONE-07",
		path, false, 1, 1)
	require.NoError(t, err)

	path[0] = mustPoint(t, 9, 9)
	assert.Equal(t, mustPoint(t, 1, 1), plan.Path()[0])

	got := plan.Path()
	got[0] = mustPoint(t, 8, 8)
	assert.Equal(t, mustPoint(t, 1, 1), plan.Path()[0])
}

func TestDeliveryPlanValidateZeroValue(t *testing.T) {
	var plan DeliveryPlan
	assert.ErrorIs(t, plan.Validate(), ErrDeliveryPlanIsNotConstructed)
}
