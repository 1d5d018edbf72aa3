package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field to update is required")
)

// UpdateShipmentCommand represents a delivery partner's progress report on a
// shipment: a timeline event (location, status, description in any
// combination) and/or a revised delivery estimate. Confirming final delivery
// additionally carries the verification code collected from the customer.
//
// Example:
//
//	status := shipment.OutForDelivery
//	cmd, err := NewUpdateShipmentCommand(shipmentID, partnerID,
//	    nil, &status, "", "", nil)
//	if err != nil {
//	    return err
//	}
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	partnerID         kernel.UUID
	location          *kernel.ZipCode
	status            *shipment.Status
	description       string
	verificationCode  string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to report shipment progress.
// All content fields are optional individually, but at least one of
// location, status, description or estimated delivery must be present;
// otherwise ErrNothingToUpdate is returned.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	partnerID kernel.UUID,
	location *kernel.ZipCode,
	status *shipment.Status,
	description string,
	verificationCode string,
	estimatedDelivery *time.Time,
) (UpdateShipmentCommand, error) {
	updateCommand := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setShipmentID(shipmentID),
		updateCommand.setPartnerID(partnerID),
		updateCommand.setLocation(location),
		updateCommand.setStatus(status),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	if location == nil && status == nil && description == "" && estimatedDelivery == nil {
		return UpdateShipmentCommand{}, ErrNothingToUpdate
	}

	updateCommand.description = description
	updateCommand.verificationCode = verificationCode
	updateCommand.estimatedDelivery = estimatedDelivery
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being updated.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// PartnerID returns the identity of the partner reporting progress.
func (c UpdateShipmentCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Location returns the reported scan location, or nil to inherit it.
func (c UpdateShipmentCommand) Location() *kernel.ZipCode {
	return c.location
}

// Status returns the reported status, or nil to inherit it.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// Description returns the free-form event description, possibly empty.
func (c UpdateShipmentCommand) Description() string {
	return c.description
}

// VerificationCode returns the delivery verification code collected from
// the customer. Only meaningful when the reported status is "delivered".
func (c UpdateShipmentCommand) VerificationCode() string {
	return c.verificationCode
}

// EstimatedDelivery returns the revised delivery estimate, or nil.
func (c UpdateShipmentCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdateShipmentCommand) setLocation(location *kernel.ZipCode) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *UpdateShipmentCommand) setStatus(status *shipment.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
