package medication_test

import (
	"testing"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/medication"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMedication_ValidInput(t *testing.T) {
	m, err := medication.NewMedication("MED-001", "Insulin", "Fast-acting insulin", 12)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, "MED-001", m.ID())
	assert.Equal(t, "Insulin", m.Name())
	assert.Equal(t, "Fast-acting insulin", m.Description())
	assert.Equal(t, 12, m.StockQuantity())
	assert.True(t, m.InStock())
	assert.Equal(t, "Insulin - Fast-acting insulin (12 in stock)", m.String())
}

func TestNewMedication_InvalidInput(t *testing.T) {
	_, err := medication.NewMedication("", "Insulin", "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, medication.ErrMedicationIDIsRequired)

	_, err = medication.NewMedication("MED-001", "", "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, medication.ErrMedicationNameIsRequired)

	_, err = medication.NewMedication("MED-001", "Insulin", "", -1)
	require.Error(t, err)
}

func TestMedication_ZeroValueFailsValidation(t *testing.T) {
	var m medication.Medication
	require.Error(t, m.Validate())
}

func TestMedication_OutOfStock(t *testing.T) {
	m, err := medication.NewMedication("MED-002", "Adrenaline", "Auto-injector", 0)
	require.NoError(t, err)
	assert.False(t, m.InStock())
}
