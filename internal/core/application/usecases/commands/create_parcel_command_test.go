package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	typeID := kernel.NewUUID()
	sessionID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, "Book", 0.5, 20, typeID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, "Book", cmd.Name())
	assert.InDelta(t, 0.5, cmd.Weight(), 0.0001)
	assert.InDelta(t, 20.0, cmd.PriceUSD(), 0.0001)
	assert.Equal(t, typeID, cmd.TypeID())
	assert.Equal(t, sessionID, cmd.SessionID())
}

func TestNewCreateParcelCommand_InvalidParcelID(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.UUID{}, "Book", 0.5, 20, kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateParcelCommand_InvalidFields(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "", -1, -1, kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}
