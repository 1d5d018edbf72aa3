package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)
)

// CancelShipmentCommand represents a seller's request to cancel a shipment
// they submitted.
//
// Example:
//
//	cmd, err := NewCancelShipmentCommand(shipmentID, sellerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCancelShipmentCommandHandler(uowFactory, planner, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to cancel shipment: %w", err)
//	}
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	sellerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
// Validates both the shipment and the acting seller identifiers.
func NewCancelShipmentCommand(shipmentID kernel.UUID, sellerID kernel.UUID) (CancelShipmentCommand, error) {
	cancelCommand := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setShipmentID(shipmentID),
		cancelCommand.setSellerID(sellerID),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being cancelled.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SellerID returns the identity of the seller requesting cancellation.
func (c CancelShipmentCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c *CancelShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CancelShipmentCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}
