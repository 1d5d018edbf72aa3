// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Timeline events and reviews are owned rows removed together with the
// shipment; tags are shared reference rows linked through a join table.
type ShipmentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Content           string     `gorm:"size:100"`
	Weight            float64    `gorm:"type:numeric(6,2)"`
	Destination       int        `gorm:"type:integer"`
	EstimatedDelivery time.Time  `gorm:"index"`
	SellerID          uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID         *uuid.UUID `gorm:"type:uuid;index"`
	ContactEmail      string
	ContactPhone      *string

	Events  []EventDTO  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Tags    []TagDTO    `gorm:"many2many:shipment_tags;foreignKey:ID;joinForeignKey:ShipmentID;references:Name;joinReferences:TagName;constraint:OnDelete:CASCADE"` //nolint:lll
	Reviews []ReviewDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// EventDTO represents one timeline event row. Event rows are append-only:
// they are inserted once and never updated.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Location    int       `gorm:"type:integer"`
	Status      string    `gorm:"size:32"`
	Description string
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for timeline events.
func (EventDTO) TableName() string {
	return "shipment_events"
}

// TagDTO represents a handling tag reference row. The tag name is the
// primary key; the instruction text is fixed per tag.
type TagDTO struct {
	Name        string `gorm:"size:32;primaryKey"`
	Instruction string
}

// TableName specifies the database table name for handling tags.
func (TagDTO) TableName() string {
	return "tags"
}

// ReviewDTO represents a customer review row referencing a shipment.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}

// TableName specifies the database table name for reviews.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps the full aggregate: descriptive fields, partner assignment, timeline and tags.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	events := make([]EventDTO, 0, len(aggregate.Timeline()))
	for _, event := range aggregate.Timeline() {
		events = append(events, EventDTO{
			ID:          event.ID().Bytes(),
			ShipmentID:  aggregate.ID().Bytes(),
			Location:    event.Location().Value(),
			Status:      event.Status().String(),
			Description: event.Description(),
			CreatedAt:   event.CreatedAt(),
		})
	}

	tags := make([]TagDTO, 0, len(aggregate.Tags()))
	for _, tag := range aggregate.Tags() {
		tags = append(tags, TagDTO{
			Name:        tag.String(),
			Instruction: tag.Instruction(),
		})
	}

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		Content:           aggregate.Content(),
		Weight:            aggregate.Weight(),
		Destination:       aggregate.Destination().Value(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		SellerID:          aggregate.SellerID().Bytes(),
		PartnerID:         partnerID,
		ContactEmail:      aggregate.ContactEmail(),
		ContactPhone:      aggregate.ContactPhone(),
		Events:            events,
		Tags:              tags,
	}
}

// reviewFromDomain converts a review entity to its database representation.
func reviewFromDomain(review *shipment.Review) ReviewDTO {
	return ReviewDTO{
		ID:         review.ID().Bytes(),
		ShipmentID: review.ShipmentID().Bytes(),
		Rating:     review.Rating(),
		Comment:    review.Comment(),
		CreatedAt:  review.CreatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including timeline and tags using
// RestoreShipment. Events must come preloaded in ledger order.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	destination, err := kernel.NewZipCode(dto.Destination)
	if err != nil {
		return nil, err
	}

	timeline := make([]*shipment.Event, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		timeline = append(timeline, event)
	}

	tags := make([]shipment.Tag, 0, len(dto.Tags))
	for _, tagDTO := range dto.Tags {
		tag, tagErr := shipment.TagFromString(tagDTO.Name)
		if tagErr != nil {
			return nil, tagErr
		}
		tags = append(tags, tag)
	}

	return shipment.RestoreShipment(
		id,
		dto.Content,
		dto.Weight,
		destination,
		sellerID,
		partnerID,
		dto.ContactEmail,
		dto.ContactPhone,
		dto.EstimatedDelivery,
		timeline,
		tags,
	)
}

func eventToDomain(dto EventDTO) (*shipment.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewZipCode(dto.Location)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreEvent(id, location, status, dto.Description, dto.CreatedAt)
}
