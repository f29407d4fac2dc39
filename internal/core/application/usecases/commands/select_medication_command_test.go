package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/usecases/commands"
)

func TestNewSelectMedicationCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSelectMedicationCommand("med-001")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "med-001", cmd.MedicationID())
}

func TestNewSelectMedicationCommand_EmptyID(t *testing.T) {
	_, err := commands.NewSelectMedicationCommand("")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMedicationIDIsRequired)
}

func TestSelectMedicationCommand_ZeroValue(t *testing.T) {
	var cmd commands.SelectMedicationCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSelectMedicationCommandIsNotConstructed)
}
