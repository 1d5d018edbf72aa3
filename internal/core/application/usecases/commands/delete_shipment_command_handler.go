package commands

import (
	"context"
)

// DeleteShipmentCommandHandler removes a shipment record together with its
// owned timeline events. Returns an object-not-found error for unknown
// shipments; reviews referencing the shipment are removed with it.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment removal.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Fetches the shipment first so that unknown identifiers fail with a
// not-found error rather than silently deleting nothing.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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
	if _, err := shipmentRepo.Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := shipmentRepo.Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
