package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/usecases/commands"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

func TestNewSelectAddressCommand_ValidInput(t *testing.T) {
	point, err := kernel.NewGeoPoint(55.9445, -3.1892)
	require.NoError(t, err)
	addr, err := session.NewAddress("12 Princes Street, Edinburgh", point)
	require.NoError(t, err)

	cmd, err := commands.NewSelectAddressCommand(addr)
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, addr, cmd.Candidate())
}

func TestNewSelectAddressCommand_UnconstructedAddress(t *testing.T) {
	_, err := commands.NewSelectAddressCommand(session.Address{})
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrAddressIsNotConstructed)
}

func TestSelectAddressCommand_ZeroValue(t *testing.T) {
	var cmd commands.SelectAddressCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSelectAddressCommandIsNotConstructed)
}
