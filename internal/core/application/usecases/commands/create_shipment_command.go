package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrContentIsRequired      = errors.New("content is required")
	ErrWeightIsInvalid        = errors.New("weight must be greater than 0")
	ErrContactEmailIsRequired = errors.New("contact email is required")
)

// CreateShipmentCommand represents a seller's request to submit a new shipment.
// Encapsulates the package description, destination and customer contact details.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	zip, _ := kernel.NewZipCode(11003)
//	cmd, err := NewCreateShipmentCommand(shipmentID, "monitor 24 inch", 1.5, zip,
//	    sellerID, "customer@example.com", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, planner)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s placed and assigned to a partner", shipmentID)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	content      string
	weight       float64
	destination  kernel.ZipCode
	sellerID     kernel.UUID
	contactEmail string
	contactPhone *string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to submit a new shipment.
// Validates identifiers, requires a content description and a contact email,
// and rejects non-positive weights. The contact phone is optional.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	content string,
	weight float64,
	destination kernel.ZipCode,
	sellerID kernel.UUID,
	contactEmail string,
	contactPhone *string,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setContent(content),
		shipmentCommand.setWeight(weight),
		shipmentCommand.setDestination(destination),
		shipmentCommand.setSellerID(sellerID),
		shipmentCommand.setContactEmail(contactEmail),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	shipmentCommand.contactPhone = contactPhone
	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Content returns the package content description.
func (c CreateShipmentCommand) Content() string {
	return c.content
}

// Weight returns the package weight in kilograms.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// Destination returns the delivery destination zip code.
func (c CreateShipmentCommand) Destination() kernel.ZipCode {
	return c.destination
}

// SellerID returns the identity of the seller submitting the shipment.
func (c CreateShipmentCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// ContactEmail returns the customer's email address.
func (c CreateShipmentCommand) ContactEmail() string {
	return c.contactEmail
}

// ContactPhone returns the customer's phone number, or nil when not provided.
func (c CreateShipmentCommand) ContactPhone() *string {
	return c.contactPhone
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setContent(content string) error {
	if content == "" {
		return ErrContentIsRequired
	}

	c.content = content
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination kernel.ZipCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *CreateShipmentCommand) setContactEmail(contactEmail string) error {
	if contactEmail == "" {
		return ErrContactEmailIsRequired
	}

	c.contactEmail = contactEmail
	return nil
}
