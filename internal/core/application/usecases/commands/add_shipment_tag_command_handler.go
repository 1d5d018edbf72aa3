package commands

import (
	"context"
)

// AddShipmentTagCommandHandler attaches a handling tag to a shipment.
// The tag set has set semantics, so repeated attachment is idempotent.
type AddShipmentTagCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddShipmentTagCommandHandler creates a handler for tag attachment operations.
func NewAddShipmentTagCommandHandler(uowFactory ShipmentUoWFactory) AddShipmentTagCommandHandler {
	return AddShipmentTagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tag attachment command.
// Loads the shipment, applies the tag, and persists the aggregate.
func (h AddShipmentTagCommandHandler) Handle(ctx context.Context, cmd AddShipmentTagCommand) error {
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
	tagged, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = tagged.ApplyTag(cmd.Tag()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, tagged); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
