package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"initial", Initial, "INITIAL"},
		{"placing", Placing, "PLACING"},
		{"in transit", InTransit, "IN_TRANSIT"},
		{"arrived", Arrived, "ARRIVED"},
		{"collected", Collected, "COLLECTED"},
		{"unknown", Unknown, "UNKNOWN"},
		{"out of range", State(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestStateValidate(t *testing.T) {
	for _, s := range []State{Initial, Placing, InTransit, Arrived, Collected} {
		assert.NoError(t, s.Validate())
	}

	assert.Error(t, Unknown.Validate())
	assert.Error(t, State(42).Validate())
}

func TestStateIsTracking(t *testing.T) {
	assert.False(t, Initial.IsTracking())
	assert.False(t, Placing.IsTracking())
	assert.True(t, InTransit.IsTracking())
	assert.True(t, Arrived.IsTracking())
	assert.False(t, Collected.IsTracking())
}

func TestStateTransitionsHappyPath(t *testing.T) {
	s := Initial

	s, err := s.ConfirmLocation()
	assert.NoError(t, err)
	assert.Equal(t, Placing, s)

	s, err = s.BeginTransit()
	assert.NoError(t, err)
	assert.Equal(t, InTransit, s)

	s, err = s.MarkArrived()
	assert.NoError(t, err)
	assert.Equal(t, Arrived, s)

	s, err = s.CompletePickup()
	assert.NoError(t, err)
	assert.Equal(t, Collected, s)
}

func TestStateTransitionsRejectWrongSource(t *testing.T) {
	all := []State{Unknown, Initial, Placing, InTransit, Arrived, Collected}

	transitions := []struct {
		name  string
		from  State
		apply func(State) (State, error)
	}{
		{"confirm location", Initial, State.ConfirmLocation},
		{"begin transit", Placing, State.BeginTransit},
		{"mark arrived", InTransit, State.MarkArrived},
		{"complete pickup", Arrived, State.CompletePickup},
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range all {
				got, err := tr.apply(from)
				if from == tr.from {
					assert.NoError(t, err)
					continue
				}

				assert.Error(t, err)
				assert.Equal(t, State(0), got)
			}
		})
	}
}

func TestCollectedIsFinal(t *testing.T) {
	_, err := Collected.ConfirmLocation()
	assert.Error(t, err)
	_, err = Collected.BeginTransit()
	assert.Error(t, err)
	_, err = Collected.MarkArrived()
	assert.Error(t, err)
	_, err = Collected.CompletePickup()
	assert.Error(t, err)
}
