package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteShipmentCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		shipmentID := kernel.NewUUID()

		cmd, err := commands.NewDeleteShipmentCommand(shipmentID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ShipmentID().IsEqual(shipmentID))
	})

	t.Run("should fail with invalid shipment id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewDeleteShipmentCommand(invalidID)

		require.Error(t, err)
	})
}

func TestDeleteShipmentCommand_Validate(t *testing.T) {
	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.DeleteShipmentCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDeleteShipmentCommandIsNotConstructed)
	})
}
