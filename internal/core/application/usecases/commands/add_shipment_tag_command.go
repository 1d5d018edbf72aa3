package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrAddShipmentTagCommandIsNotConstructed = errors.New(
		"AddShipmentTagCommand must be created via NewAddShipmentTagCommand constructor",
	)
)

// AddShipmentTagCommand represents a request to attach a handling tag to a
// shipment. Attaching a tag the shipment already carries is a no-op.
//
// Example:
//
//	cmd, err := NewAddShipmentTagCommand(shipmentID, shipment.TagFragile)
//	if err != nil {
//	    return err
//	}
type AddShipmentTagCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	tag        shipment.Tag

	guard guard.ConstructorGuard
}

// NewAddShipmentTagCommand creates a command to attach a handling tag.
// Validates the shipment identifier and the tag value.
func NewAddShipmentTagCommand(shipmentID kernel.UUID, tag shipment.Tag) (AddShipmentTagCommand, error) {
	tagCommand := AddShipmentTagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tagCommand.setShipmentID(shipmentID),
		tagCommand.setTag(tag),
	); err != nil {
		return AddShipmentTagCommand{}, err
	}

	return tagCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddShipmentTagCommandIsNotConstructed if validation fails.
func (c AddShipmentTagCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentTagCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being tagged.
func (c AddShipmentTagCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Tag returns the handling tag to attach.
func (c AddShipmentTagCommand) Tag() shipment.Tag {
	return c.tag
}

func (c *AddShipmentTagCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AddShipmentTagCommand) setTag(tag shipment.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	c.tag = tag
	return nil
}
