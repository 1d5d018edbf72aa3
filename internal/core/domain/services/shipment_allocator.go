package services

import (
	"errors"

	"shipping/internal/core/domain/model/partner"
	"shipping/internal/core/domain/model/shipment"
)

// ErrPartnerUnavailable is returned when no delivery partner can take a
// shipment. This occurs when no partner services the destination zip code,
// or every eligible partner is already at its maximum handling capacity.
var ErrPartnerUnavailable = errors.New("no delivery partner available for destination")

// ShipmentAllocator is a domain service responsible for assigning a new
// shipment to a delivery partner.
//
// Selection algorithm: the caller supplies the partners eligible for the
// destination in a deterministic order (stable by insertion/identity); the
// allocator picks the first one with spare handling capacity. This is a
// first-fit rule, not a load balancer — no fairness or least-loaded
// guarantee is made.
//
// Example usage:
//
//	allocator := services.NewShipmentAllocator()
//	chosen, err := allocator.Allocate(s, eligiblePartners)
//	if errors.Is(err, services.ErrPartnerUnavailable) {
//	    // Creation fails; no shipment is retained
//	    return
//	}
type ShipmentAllocator struct{}

// NewShipmentAllocator creates a new ShipmentAllocator instance.
func NewShipmentAllocator() ShipmentAllocator {
	return ShipmentAllocator{}
}

// Allocate assigns the shipment to the first eligible partner with spare
// capacity and consumes one unit of that partner's handling capacity.
//
// Parameters:
//   - s: The shipment to assign (must be valid and unassigned)
//   - partners: Eligible partners for the destination, in deterministic order
//
// Returns:
//   - *partner.Partner: The partner the shipment was assigned to
//   - error: ErrPartnerUnavailable if the eligible set is empty or every
//     partner is at capacity, or validation/assignment errors
//
// The capacity consumption and the partner reference on the shipment are
// applied together; the caller persists both aggregates in one transaction.
func (a ShipmentAllocator) Allocate(s *shipment.Shipment, partners []*partner.Partner) (*partner.Partner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if p.CurrentCapacity() <= 0 {
			continue
		}

		if err := p.TakeShipment(); err != nil {
			return nil, err
		}

		if err := s.AssignPartner(p.ID()); err != nil {
			return nil, err
		}

		return p, nil
	}

	return nil, ErrPartnerUnavailable
}
