package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	// ReviewRatingMin is the lowest rating a review may carry.
	ReviewRatingMin = 1
	// ReviewRatingMax is the highest rating a review may carry.
	ReviewRatingMax = 5
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is the seller-facing rating a client leaves after delivery.
// It belongs to exactly one shipment and is created once through a signed,
// time-limited review token. Reviews are not further referenced by the
// shipment lifecycle.
type Review struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	rating     int
	comment    *string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewReview creates a Review for a shipment with validation.
// The rating must lie in [ReviewRatingMin, ReviewRatingMax]; the comment is
// optional (nil when the client left none).
func NewReview(
	id kernel.UUID,
	shipmentID kernel.UUID,
	rating int,
	comment *string,
	createdAt time.Time,
) (*Review, error) {
	review := &Review{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		review.setID(id),
		review.setShipmentID(shipmentID),
		review.setRating(rating),
		review.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	review.comment = comment
	return review, nil
}

// Validate checks if the Review was properly constructed via NewReview.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ShipmentID returns the identifier of the reviewed shipment.
func (r *Review) ShipmentID() kernel.UUID {
	return r.shipmentID
}

// Rating returns the rating in [ReviewRatingMin, ReviewRatingMax].
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-form comment, nil when absent.
func (r *Review) Comment() *string {
	return r.comment
}

// CreatedAt returns the review's creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.shipmentID = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < ReviewRatingMin || rating > ReviewRatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ReviewRatingMin, ReviewRatingMax)
	}
	r.rating = rating
	return nil
}

func (r *Review) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	r.createdAt = createdAt
	return nil
}
