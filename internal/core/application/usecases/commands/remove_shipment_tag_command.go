package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrRemoveShipmentTagCommandIsNotConstructed = errors.New(
		"RemoveShipmentTagCommand must be created via NewRemoveShipmentTagCommand constructor",
	)
)

// RemoveShipmentTagCommand represents a request to detach a handling tag
// from a shipment. Detaching a tag that is not present fails with an
// object-not-found error.
type RemoveShipmentTagCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	tag        shipment.Tag

	guard guard.ConstructorGuard
}

// NewRemoveShipmentTagCommand creates a command to detach a handling tag.
// Validates the shipment identifier and the tag value.
func NewRemoveShipmentTagCommand(shipmentID kernel.UUID, tag shipment.Tag) (RemoveShipmentTagCommand, error) {
	tagCommand := RemoveShipmentTagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tagCommand.setShipmentID(shipmentID),
		tagCommand.setTag(tag),
	); err != nil {
		return RemoveShipmentTagCommand{}, err
	}

	return tagCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveShipmentTagCommandIsNotConstructed if validation fails.
func (c RemoveShipmentTagCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentTagCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being untagged.
func (c RemoveShipmentTagCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Tag returns the handling tag to detach.
func (c RemoveShipmentTagCommand) Tag() shipment.Tag {
	return c.tag
}

func (c *RemoveShipmentTagCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RemoveShipmentTagCommand) setTag(tag shipment.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	c.tag = tag
	return nil
}
