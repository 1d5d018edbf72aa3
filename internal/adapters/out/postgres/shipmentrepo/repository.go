package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database together with its initial
// timeline events and tag links.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Tags").Create(&dto).Error; err != nil {
		return err
	}

	if err := r.replaceTags(ctx, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
// Shipment columns are rewritten, new timeline events are inserted
// (existing rows are append-only and left untouched), and the tag links
// are replaced to mirror the aggregate's tag set.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("content", "weight", "destination", "estimated_delivery",
			"seller_id", "partner_id", "contact_email", "contact_phone").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Events) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Events).Error
		if err != nil {
			return err
		}
	}

	if err := r.replaceTags(ctx, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID with its timeline and tags.
// The shipment row is locked until the surrounding transaction completes.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "shipments"}}).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("shipment_events.created_at")
		}).
		Preload("Tags").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a shipment; timeline events, tag links and reviews go
// with it via foreign key cascade.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}

	return nil
}

// AddReview saves a customer review referencing a shipment.
func (r *GormShipmentRepository) AddReview(ctx context.Context, review *shipment.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	dto := reviewFromDomain(review)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// replaceTags rewrites the shipment's tag links to match the aggregate.
// Missing tag reference rows are created on the way.
func (r *GormShipmentRepository) replaceTags(ctx context.Context, dto *ShipmentDTO) error {
	tags := dto.Tags
	return r.db.WithContext(ctx).Model(dto).Association("Tags").Replace(&tags)
}
