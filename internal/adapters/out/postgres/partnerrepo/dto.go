// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the delivery partner aggregate, handling
// the conversion between domain entities and database representations.
package partnerrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// The active shipment counter lives on the partner row so that capacity
// checks and consumption happen under the same row lock. CreatedAt gives
// the stable ordering used by the eligibility query.
type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	MaxCapacity     int       `gorm:"type:int;not null"`
	ActiveShipments int       `gorm:"type:int;not null"`
	CreatedAt       time.Time

	Locations []LocationDTO `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// LocationDTO represents one serviceable zip code row for a partner.
type LocationDTO struct {
	PartnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Zip       int       `gorm:"type:integer;primaryKey"`
}

// TableName specifies the database table name for serviceable locations.
func (LocationDTO) TableName() string {
	return "partner_locations"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	partnerID := aggregate.ID().Bytes()

	locations := make([]LocationDTO, 0, len(aggregate.ServiceableZips()))
	for _, zip := range aggregate.ServiceableZips() {
		locations = append(locations, LocationDTO{
			PartnerID: partnerID,
			Zip:       zip.Value(),
		})
	}

	return PartnerDTO{
		ID:              partnerID,
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		MaxCapacity:     aggregate.MaxCapacity(),
		ActiveShipments: aggregate.ActiveShipments(),
		Locations:       locations,
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the aggregate including its outstanding load using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zips := make([]kernel.ZipCode, 0, len(dto.Locations))
	for _, location := range dto.Locations {
		zip, zipErr := kernel.NewZipCode(location.Zip)
		if zipErr != nil {
			return nil, zipErr
		}
		zips = append(zips, zip)
	}

	return partner.RestorePartner(id, dto.Name, dto.Email, dto.MaxCapacity, dto.ActiveShipments, zips)
}
