package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves the shipment read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(db)
//	query, _ := NewGetShipmentQuery(shipmentID)
//
//	model, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment
//	}
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query to retrieve one shipment with its timeline and
// tags. The timeline comes back in ledger order (event creation time).
// Returns an ObjectNotFoundError for unknown shipment identifiers.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response, err := h.loadShipment(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if response.Timeline, err = h.loadTimeline(ctx, query.ShipmentID()); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if len(response.Timeline) > 0 {
		response.Status = response.Timeline[len(response.Timeline)-1].Status
	} else {
		response.Status = shipment.Unknown.String()
	}

	if response.Tags, err = h.loadTags(ctx, query.ShipmentID()); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return response, nil
}

func (h GetShipmentQueryHandler) loadShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (GetShipmentQueryResponse, error) {
	var response GetShipmentQueryResponse
	var id, sellerID uuid.UUID
	var partnerID uuid.NullUUID
	var partnerName, contactPhone sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.content,
			s.weight,
			s.destination,
			s.estimated_delivery,
			s.seller_id,
			s.partner_id,
			p.name,
			s.contact_email,
			s.contact_phone
		FROM shipments s
		LEFT JOIN partners p ON p.id = s.partner_id
		WHERE s.id = ?
	`, shipmentID.Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Content,
		&response.Weight,
		&response.Destination,
		&response.EstimatedDelivery,
		&sellerID,
		&partnerID,
		&partnerName,
		&response.ContactEmail,
		&contactPhone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment_id", shipmentID)
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if response.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if partnerID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if idErr != nil {
			return GetShipmentQueryResponse{}, idErr
		}
		response.PartnerID = &assigned
	}
	if partnerName.Valid {
		response.PartnerName = &partnerName.String
	}
	if contactPhone.Valid {
		response.ContactPhone = &contactPhone.String
	}

	return response, nil
}

func (h GetShipmentQueryHandler) loadTimeline(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]TimelineEventResponse, error) {
	timeline := make([]TimelineEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			location,
			status,
			description,
			created_at
		FROM shipment_events
		WHERE shipment_id = ?
		ORDER BY created_at
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TimelineEventResponse
		if err = rows.Scan(&event.Location, &event.Status, &event.Description, &event.CreatedAt); err != nil {
			return nil, err
		}
		timeline = append(timeline, event)
	}

	return timeline, rows.Err()
}

func (h GetShipmentQueryHandler) loadTags(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]TagResponse, error) {
	tags := make([]TagResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.name,
			t.instruction
		FROM tags t
		JOIN shipment_tags st ON st.tag_name = t.name
		WHERE st.shipment_id = ?
		ORDER BY t.name
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag TagResponse
		if err = rows.Scan(&tag.Name, &tag.Instruction); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
