package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueShipmentsQueryHandler retrieves overdue shipments from the database.
// A shipment is overdue when its delivery estimate lies in the past and its
// latest event is neither "delivered" nor "cancelled".
//
// Example:
//
//	handler := NewGetOverdueShipmentsQueryHandler(db)
//	query := NewGetOverdueShipmentsQuery()
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get overdue shipments: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d shipments past their delivery estimate\n", len(overdue))
type GetOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue shipment queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all overdue shipments.
// The latest event per shipment is resolved with a lateral join; results
// come back oldest estimate first.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]GetOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			latest.status,
			s.estimated_delivery,
			s.partner_id
		FROM shipments s
		JOIN LATERAL (
			SELECT e.status
			FROM shipment_events e
			WHERE e.shipment_id = s.id
			ORDER BY e.created_at DESC
			LIMIT 1
		) latest ON TRUE
		WHERE s.estimated_delivery < NOW()
			AND latest.status NOT IN (?, ?)
		ORDER BY s.estimated_delivery
	`, shipment.Delivered.String(), shipment.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOverdueShipmentsQueryResponse
		var id uuid.UUID
		var partnerID uuid.NullUUID

		err = rows.Scan(&id, &response.Status, &response.EstimatedDelivery, &partnerID)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = shipmentID

		if partnerID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.PartnerID = &assigned
		}

		overdue = append(overdue, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
