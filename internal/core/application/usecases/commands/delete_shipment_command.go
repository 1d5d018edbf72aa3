package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// DeleteShipmentCommand represents a request to permanently remove a
// shipment record and its timeline.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to remove a shipment.
func NewDeleteShipmentCommand(shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	deleteCommand := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteShipmentCommandIsNotConstructed if validation fails.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being removed.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
