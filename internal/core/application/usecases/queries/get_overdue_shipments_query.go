package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
		"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
	)
)

// GetOverdueShipmentsQuery retrieves shipments whose delivery estimate has
// passed while they are still in a non-terminal status. Feeds the periodic
// overdue-monitoring job.
type GetOverdueShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query to retrieve overdue shipments.
// This is a parameterless query evaluated against the current time.
func NewGetOverdueShipmentsQuery() GetOverdueShipmentsQuery {
	return GetOverdueShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueShipmentsQueryIsNotConstructed if validation fails.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// GetOverdueShipmentsQueryResponse represents one overdue shipment.
type GetOverdueShipmentsQueryResponse struct {
	ID                kernel.UUID
	Status            string
	EstimatedDelivery time.Time
	PartnerID         *kernel.UUID
}
