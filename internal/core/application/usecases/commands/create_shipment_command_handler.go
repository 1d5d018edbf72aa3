package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
)

// defaultDeliveryWindow is the promised delivery interval assigned to every
// new shipment at creation.
const defaultDeliveryWindow = 3 * 24 * time.Hour

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Assigns a delivery partner with spare capacity, records the initial "placed"
// event, and emits the order-placed notification after the transaction commits.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, planner, logger)
//	cmd, _ := NewCreateShipmentCommand(shipmentID, "monitor 24 inch", 1.5, zip,
//	    sellerID, "customer@example.com", nil)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrPartnerUnavailable) {
//	    // no partner services the destination or all are at capacity
//	}
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   StatusNotifier
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a UoWFactory for coordinating transactional updates across repositories
// and a StatusNotifier for the post-commit customer notification.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	notifier StatusNotifier,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_shipment"),
	}
}

// Handle processes the shipment creation command.
// Locks the partners servicing the destination, assigns the first one with
// spare capacity, and persists the shipment together with the partner's
// updated counter in a single transaction. If no partner is available the
// whole operation fails with services.ErrPartnerUnavailable and nothing is
// retained.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Content(),
		cmd.Weight(),
		cmd.Destination(),
		cmd.SellerID(),
		cmd.ContactEmail(),
		cmd.ContactPhone(),
		now.Add(defaultDeliveryWindow),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	partnerRepo := uow.PartnerRepository()

	partners, err := partnerRepo.GetServicing(ctx, cmd.Destination())
	if err != nil {
		return err
	}

	assignedPartner, err := services.NewShipmentAllocator().Allocate(newShipment, partners)
	if err != nil {
		return err
	}

	destination := cmd.Destination()
	placed := shipment.Placed
	_, err = newShipment.RecordEvent(
		kernel.NewUUID(),
		&destination,
		&placed,
		fmt.Sprintf("assigned to %s", assignedPartner.Name()),
		now,
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, assignedPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyStatusChange(ctx, newShipment, shipment.Placed, assignedPartner.Name()); err != nil {
		h.logger.Warn("failed to notify shipment placed", "shipment_id", cmd.ShipmentID(), "error", err)
	}

	return nil
}
