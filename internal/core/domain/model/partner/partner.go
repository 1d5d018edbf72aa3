package partner

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a partner without a contact email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New(
		"Partner must be created via NewPartner or RestorePartner constructor")
	// ErrNoCapacityLeft is returned when taking a shipment would exceed the
	// partner's maximum handling capacity.
	ErrNoCapacityLeft = errors.New("partner has no handling capacity left")
)

// Partner represents a delivery partner in the system. It is an aggregate
// root that manages the partner's identity, the set of zip codes it can
// service, and its outstanding shipment load against a maximum handling
// capacity.
//
// Business rules:
//   - Partner must have a valid UUID, non-empty name and contact email
//   - Maximum handling capacity is a non-negative integer
//   - Current handling capacity = max capacity - active (non-terminal)
//     shipments, and must never go below zero
//   - A shipment may only be taken while current capacity is positive
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the human-readable name of the partner
	name string
	// email is the partner's contact address
	email string
	// maxCapacity is the maximum number of shipments handled at once
	maxCapacity int
	// activeShipments counts currently assigned non-terminal shipments
	activeShipments int
	// serviceableZips is the set of zip codes the partner can deliver to
	serviceableZips []kernel.ZipCode
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewPartner creates a new Partner with the specified parameters.
// A fresh partner starts with zero active shipments.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - email: Contact address (must be non-empty)
//   - maxCapacity: Maximum shipments handled at once (must be >= 0)
//   - serviceableZips: Zip codes the partner can deliver to
func NewPartner(
	id kernel.UUID,
	name string,
	email string,
	maxCapacity int,
	serviceableZips []kernel.ZipCode,
) (*Partner, error) {
	return RestorePartner(id, name, email, maxCapacity, 0, serviceableZips)
}

// RestorePartner reconstructs a Partner aggregate from persistent storage,
// including its current outstanding shipment load. The restored partner
// behaves identically to one created through normal domain operations.
func RestorePartner(
	id kernel.UUID,
	name string,
	email string,
	maxCapacity int,
	activeShipments int,
	serviceableZips []kernel.ZipCode,
) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setMaxCapacity(maxCapacity),
		p.setActiveShipments(activeShipments, maxCapacity),
		p.setServiceableZips(serviceableZips),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Partner was properly constructed via a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's human-readable name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's contact address.
func (p *Partner) Email() string {
	return p.email
}

// MaxCapacity returns the maximum number of shipments the partner handles at once.
func (p *Partner) MaxCapacity() int {
	return p.maxCapacity
}

// ActiveShipments returns the number of currently assigned non-terminal shipments.
func (p *Partner) ActiveShipments() int {
	return p.activeShipments
}

// CurrentCapacity returns the remaining handling capacity:
// max capacity minus active shipments. Never negative.
func (p *Partner) CurrentCapacity() int {
	return p.maxCapacity - p.activeShipments
}

// ServiceableZips returns the set of zip codes the partner can deliver to.
func (p *Partner) ServiceableZips() []kernel.ZipCode {
	return p.serviceableZips
}

// CanService reports whether the partner delivers to the given zip code.
func (p *Partner) CanService(zip kernel.ZipCode) bool {
	for _, z := range p.serviceableZips {
		if z.IsEqual(zip) {
			return true
		}
	}
	return false
}

// TakeShipment consumes one unit of handling capacity for a newly assigned
// shipment. Returns ErrNoCapacityLeft when the partner is already at its
// maximum handling capacity; the caller must then try the next eligible
// partner.
func (p *Partner) TakeShipment() error {
	if p.CurrentCapacity() <= 0 {
		return ErrNoCapacityLeft
	}
	p.activeShipments++
	return nil
}

// ReleaseShipment frees one unit of handling capacity after an assigned
// shipment reaches a terminal status. Releasing below zero is ignored to
// keep the derived capacity invariant intact.
func (p *Partner) ReleaseShipment() {
	if p.activeShipments > 0 {
		p.activeShipments--
	}
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	p.email = email
	return nil
}

func (p *Partner) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("max handling capacity",
			fmt.Errorf("%d is negative", maxCapacity))
	}
	p.maxCapacity = maxCapacity
	return nil
}

func (p *Partner) setActiveShipments(activeShipments int, maxCapacity int) error {
	if activeShipments < 0 || activeShipments > maxCapacity {
		return errs.NewValueIsOutOfRangeError("active shipments", activeShipments, 0, maxCapacity)
	}
	p.activeShipments = activeShipments
	return nil
}

func (p *Partner) setServiceableZips(zips []kernel.ZipCode) error {
	for _, z := range zips {
		if err := z.Validate(); err != nil {
			return err
		}
	}
	p.serviceableZips = zips
	return nil
}
