package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrPartnerNameIsRequired     = errors.New("partner name is required")
	ErrPartnerEmailIsRequired    = errors.New("partner email is required")
	ErrMaxCapacityIsInvalid      = errors.New("max capacity must be greater than 0")
	ErrServiceableZipsAreMissing = errors.New("at least one serviceable zip code is required")
)

// CreatePartnerCommand represents a request to register a new delivery
// partner with its handling capacity and serviceable area.
//
// Example:
//
//	partnerID := kernel.NewUUID()
//	zip, _ := kernel.NewZipCode(11003)
//	cmd, err := NewCreatePartnerCommand(partnerID, "Speedy Shipping", "ops@speedy.example",
//	    20, []kernel.ZipCode{zip})
//	if err != nil {
//	    return err
//	}
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID       kernel.UUID
	name            string
	email           string
	maxCapacity     int
	serviceableZips []kernel.ZipCode

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a delivery partner.
// Requires a name, an email, a positive capacity and at least one
// serviceable zip code.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	maxCapacity int,
	serviceableZips []kernel.ZipCode,
) (CreatePartnerCommand, error) {
	partnerCommand := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setName(name),
		partnerCommand.setEmail(email),
		partnerCommand.setMaxCapacity(maxCapacity),
		partnerCommand.setServiceableZips(serviceableZips),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's contact email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// MaxCapacity returns the number of shipments the partner can handle at once.
func (c CreatePartnerCommand) MaxCapacity() int {
	return c.maxCapacity
}

// ServiceableZips returns the zip codes the partner delivers to.
func (c CreatePartnerCommand) ServiceableZips() []kernel.ZipCode {
	return c.serviceableZips
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setEmail(email string) error {
	if email == "" {
		return ErrPartnerEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreatePartnerCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return ErrMaxCapacityIsInvalid
	}

	c.maxCapacity = maxCapacity
	return nil
}

func (c *CreatePartnerCommand) setServiceableZips(zips []kernel.ZipCode) error {
	if len(zips) == 0 {
		return ErrServiceableZipsAreMissing
	}

	for _, zip := range zips {
		if err := zip.Validate(); err != nil {
			return err
		}
	}

	c.serviceableZips = zips
	return nil
}
