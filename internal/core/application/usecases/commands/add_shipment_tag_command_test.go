package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddShipmentTagCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		shipmentID := kernel.NewUUID()

		cmd, err := commands.NewAddShipmentTagCommand(shipmentID, shipment.TagFragile)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, shipment.TagFragile, cmd.Tag())
	})

	t.Run("should fail with invalid shipment id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewAddShipmentTagCommand(invalidID, shipment.TagFragile)

		require.Error(t, err)
	})

	t.Run("should fail with invalid tag", func(t *testing.T) {
		_, err := commands.NewAddShipmentTagCommand(kernel.NewUUID(), shipment.TagUnknown)

		require.Error(t, err)
	})
}

func TestAddShipmentTagCommand_Validate(t *testing.T) {
	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.AddShipmentTagCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrAddShipmentTagCommandIsNotConstructed)
	})
}
