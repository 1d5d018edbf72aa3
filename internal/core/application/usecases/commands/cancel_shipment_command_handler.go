package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ErrShipmentAlreadyDelivered is returned when a seller attempts to cancel
// a shipment that has already reached the customer.
var ErrShipmentAlreadyDelivered = errors.New("delivered shipment cannot be cancelled")

// CancelShipmentCommandHandler handles seller-initiated shipment cancellation.
// Appends the "cancelled by seller" event, frees the assigned partner's
// capacity slot, and emits the cancellation notification after commit.
// Cancelling an already cancelled shipment appends another cancellation
// event without touching the partner again.
//
// Example:
//
//	handler := NewCancelShipmentCommandHandler(uowFactory, planner, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNotAuthorized):
//	    // shipment belongs to a different seller
//	case errors.Is(err, ErrShipmentAlreadyDelivered):
//	    // too late to cancel
//	}
type CancelShipmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   StatusNotifier
	logger     *slog.Logger
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(
	uowFactory UoWFactory,
	notifier StatusNotifier,
	logger *slog.Logger,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_shipment"),
	}
}

// Handle processes the cancellation command.
// Only the submitting seller may cancel, and only while the shipment has
// not been delivered. The shipment update and the partner capacity release
// commit in one transaction.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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
	cancelled, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !cancelled.SellerID().IsEqual(cmd.SellerID()) {
		return ErrNotAuthorized
	}

	current := cancelled.CurrentStatus()
	if current == shipment.Delivered {
		return ErrShipmentAlreadyDelivered
	}

	status := shipment.Cancelled
	_, err = cancelled.RecordEvent(kernel.NewUUID(), nil, &status, "", time.Now().UTC())
	if err != nil {
		return err
	}

	// The capacity slot was already freed if the shipment was cancelled before.
	if !current.IsTerminal() && cancelled.PartnerID() != nil {
		if err = releasePartnerSlot(ctx, uow, *cancelled.PartnerID()); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyStatusChange(ctx, cancelled, shipment.Cancelled, ""); err != nil {
		h.logger.Warn("failed to notify shipment cancelled", "shipment_id", cmd.ShipmentID(), "error", err)
	}

	return nil
}
