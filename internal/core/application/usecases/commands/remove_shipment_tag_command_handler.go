package commands

import (
	"context"
)

// RemoveShipmentTagCommandHandler detaches a handling tag from a shipment.
// Returns an object-not-found error when the shipment does not carry the tag.
type RemoveShipmentTagCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRemoveShipmentTagCommandHandler creates a handler for tag detachment operations.
func NewRemoveShipmentTagCommandHandler(uowFactory ShipmentUoWFactory) RemoveShipmentTagCommandHandler {
	return RemoveShipmentTagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tag detachment command.
func (h RemoveShipmentTagCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentTagCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	untagged, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = untagged.RemoveTag(cmd.Tag()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, untagged); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
