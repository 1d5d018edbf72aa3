package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The complete aggregate — timeline events and tag set included — is stored
// and restored as a whole; events are owned by the shipment and removed
// with it.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage, including its
	// initial timeline event.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate: newly
	// appended events, tag set changes and field updates. Existing events
	// are never mutated.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier, with
	// its full timeline and tags. The row is locked for the duration of
	// the surrounding transaction so that authorization checks, status
	// comparison and event appends are linearizable per shipment.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment and its owned timeline events.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddReview persists a review row referencing a shipment.
	AddReview(ctx context.Context, review *shipment.Review) error
}
