package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ErrNotAuthorized is returned when the acting partner is not the one the
// shipment is assigned to, or when a delivery confirmation carries a wrong
// or missing verification code.
var ErrNotAuthorized = errors.New("partner is not authorized for this shipment")

// UpdateShipmentCommandHandler handles shipment progress reports from the
// assigned delivery partner. Appends timeline events, revises the delivery
// estimate, verifies the handover code on final delivery, and releases the
// partner's capacity slot once the shipment reaches a terminal status.
//
// Example:
//
//	handler := NewUpdateShipmentCommandHandler(uowFactory, codes, planner, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNotAuthorized):
//	    // wrong partner or wrong verification code
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown shipment
//	}
type UpdateShipmentCommandHandler struct {
	uowFactory UoWFactory
	codes      ports.VerificationCodes
	notifier   StatusNotifier
	logger     *slog.Logger
}

// NewUpdateShipmentCommandHandler creates a handler for shipment progress reports.
// Requires the verification code store for delivery confirmation checks.
func NewUpdateShipmentCommandHandler(
	uowFactory UoWFactory,
	codes ports.VerificationCodes,
	notifier StatusNotifier,
	logger *slog.Logger,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger.With("component", "update_shipment"),
	}
}

// Handle processes the progress report.
// The shipment row stays locked for the whole transaction, so the
// authorization check, the status transition check and the event append are
// linearizable per shipment. A report that only revises the delivery
// estimate produces no timeline event, and the estimate of a terminal
// shipment cannot be revised at all.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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
	updated, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !updated.IsAssignedTo(cmd.PartnerID()) {
		return ErrNotAuthorized
	}

	if err = h.checkVerificationCode(ctx, cmd); err != nil {
		return err
	}

	current := updated.CurrentStatus()

	if eta := cmd.EstimatedDelivery(); eta != nil {
		if current.IsTerminal() {
			return errs.NewValueIsInvalidError("estimated_delivery")
		}
		if err = updated.SetEstimatedDelivery(*eta); err != nil {
			return err
		}
	}

	if cmd.Location() != nil || cmd.Status() != nil || cmd.Description() != "" {
		_, err = updated.RecordEvent(
			kernel.NewUUID(),
			cmd.Location(),
			cmd.Status(),
			cmd.Description(),
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
	}

	// The capacity slot was already freed if the shipment was terminal before.
	if status := cmd.Status(); status != nil && status.IsTerminal() && !current.IsTerminal() {
		if err = releasePartnerSlot(ctx, uow, cmd.PartnerID()); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if status := cmd.Status(); status != nil {
		if err = h.notifier.NotifyStatusChange(ctx, updated, *status, ""); err != nil {
			h.logger.Warn("failed to notify status change",
				"shipment_id", cmd.ShipmentID(), "status", status.String(), "error", err)
		}
	}

	return nil
}

// checkVerificationCode enforces the delivery handshake: confirming the
// "delivered" status requires the code the customer received. A missing
// record or a mismatch both surface as ErrNotAuthorized.
func (h UpdateShipmentCommandHandler) checkVerificationCode(ctx context.Context, cmd UpdateShipmentCommand) error {
	status := cmd.Status()
	if status == nil || *status != shipment.Delivered {
		return nil
	}

	code, err := h.codes.Get(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotAuthorized
	}
	if err != nil {
		return err
	}

	if code != cmd.VerificationCode() {
		return ErrNotAuthorized
	}

	return nil
}

// releasePartnerSlot frees one unit of the partner's handling capacity.
// Called inside the transaction that moves a shipment to a terminal status.
func releasePartnerSlot(ctx context.Context, uow UoW, partnerID kernel.UUID) error {
	partnerRepo := uow.PartnerRepository()
	assignedPartner, err := partnerRepo.Get(ctx, partnerID)
	if err != nil {
		return err
	}

	assignedPartner.ReleaseShipment()
	return partnerRepo.Update(ctx, assignedPartner)
}
