package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates, including the capacity-critical eligibility query used by
// shipment creation.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage, materializing
	// location rows for serviceable zip codes on first use.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate, most
	// importantly its outstanding shipment counter.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetServicing retrieves all partners whose serviceable locations
	// include the given zip code, in stable insertion order. The rows are
	// locked for the duration of the surrounding transaction so that two
	// concurrent creations cannot both consume a partner's last free slot.
	GetServicing(ctx context.Context, zip kernel.ZipCode) ([]*partner.Partner, error)
}
