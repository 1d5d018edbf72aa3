// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves the full read model of a single shipment:
// descriptive fields, assigned partner, complete timeline and handling tags.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetShipmentQueryHandler(db)
//
//	model, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve shipment: %w", err)
//	}
//
//	fmt.Printf("Shipment %s is %s\n", model.ID, model.Status)
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
// Validates the shipment identifier.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentQueryResponse is the shipment read model.
// The status is the status of the latest timeline event.
type GetShipmentQueryResponse struct {
	ID                kernel.UUID
	Content           string
	Weight            float64
	Destination       int
	Status            string
	EstimatedDelivery time.Time
	SellerID          kernel.UUID
	PartnerID         *kernel.UUID
	PartnerName       *string
	ContactEmail      string
	ContactPhone      *string
	Timeline          []TimelineEventResponse
	Tags              []TagResponse
}

// TimelineEventResponse is one entry of the shipment's event ledger.
type TimelineEventResponse struct {
	Location    int
	Status      string
	Description string
	CreatedAt   time.Time
}

// TagResponse is one handling tag with its fixed handling instruction.
type TagResponse struct {
	Name        string
	Instruction string
}
