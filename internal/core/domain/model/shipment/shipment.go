package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	// ContentMaxLength is the longest permitted content description.
	ContentMaxLength = 100
	// WeightMax is the heaviest shipment accepted, in weight units.
	WeightMax = 25.0
)

var (
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment or RestoreShipment constructor")
	// ErrContentIsRequired is returned when attempting to create a shipment without content.
	ErrContentIsRequired = errs.NewValueIsRequiredError("content")
	// ErrContactEmailIsRequired is returned when attempting to create a shipment
	// without a client contact email.
	ErrContactEmailIsRequired = errs.NewValueIsRequiredError("client contact email")
	// ErrNoPriorEvent is returned when the ledger is asked to infer event fields
	// from an empty timeline.
	ErrNoPriorEvent = errors.New("shipment timeline has no prior event to inherit from")
	// ErrEstimatedDeliveryIsRequired is returned when applying a zero estimated delivery time.
	ErrEstimatedDeliveryIsRequired = errs.NewValueIsRequiredError("estimated delivery")
)

// Shipment represents a single consignment in the system. It is the
// aggregate root that owns the shipment's timeline of events and its tag
// set, and references (without owning) the seller and the assigned
// delivery partner.
//
// Shipment follows these invariants:
//   - Content is non-empty and at most ContentMaxLength characters
//   - Weight is positive and at most WeightMax weight units
//   - The current status is always the status of the most recent timeline
//     event (latest creation timestamp, ties broken by insertion order)
//   - The timeline is append-only and monotonically non-decreasing in
//     lifecycle progress, except that Cancelled may follow any non-terminal
//     status
//   - Once in a terminal status the shipment is immutable, apart from
//     attaching a review
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// content describes what is being shipped
	content string

	// weight is the package weight in weight units
	weight float64

	// destination is the zip code the shipment is delivered to
	destination kernel.ZipCode

	// estimatedDelivery is the promised delivery time
	estimatedDelivery time.Time

	// sellerID references the owning seller
	sellerID kernel.UUID

	// partnerID references the assigned delivery partner (nil until assignment succeeds)
	partnerID *kernel.UUID

	// contactEmail is the client's notification address
	contactEmail string

	// contactPhone is the client's optional SMS number
	contactPhone *string

	// timeline is the ordered, append-only event ledger
	timeline []*Event

	// tags is the set of labels attached to the shipment
	tags []Tag

	// guard ensures the shipment was properly constructed
	guard guard.ConstructorGuard
}

// NewShipment creates a new Shipment with validation. This is the only way
// (besides RestoreShipment) to create a valid Shipment, ensuring all
// business invariants hold.
//
// The new shipment has an empty timeline and no assigned partner; the
// caller assigns a partner and records the initial Placed event before
// persisting.
func NewShipment(
	id kernel.UUID,
	content string,
	weight float64,
	destination kernel.ZipCode,
	sellerID kernel.UUID,
	contactEmail string,
	contactPhone *string,
	estimatedDelivery time.Time,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setContent(content),
		s.setWeight(weight),
		s.setDestination(destination),
		s.setSellerID(sellerID),
		s.setContactEmail(contactEmail),
		s.SetEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return nil, err
	}

	s.contactPhone = contactPhone
	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent
// storage, including its assigned partner, timeline and tags. The restored
// shipment behaves identically to one built through normal domain
// operations.
func RestoreShipment(
	id kernel.UUID,
	content string,
	weight float64,
	destination kernel.ZipCode,
	sellerID kernel.UUID,
	partnerID *kernel.UUID,
	contactEmail string,
	contactPhone *string,
	estimatedDelivery time.Time,
	timeline []*Event,
	tags []Tag,
) (*Shipment, error) {
	s, err := NewShipment(id, content, weight, destination, sellerID, contactEmail, contactPhone, estimatedDelivery)
	if err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err = s.AssignPartner(*partnerID); err != nil {
			return nil, err
		}
	}

	for _, event := range timeline {
		if err = event.Validate(); err != nil {
			return nil, err
		}
	}
	s.timeline = timeline

	for _, tag := range tags {
		if err = tag.Validate(); err != nil {
			return nil, err
		}
	}
	s.tags = tags

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Content returns the content description.
func (s *Shipment) Content() string {
	return s.content
}

// Weight returns the package weight in weight units.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// Destination returns the destination zip code.
func (s *Shipment) Destination() kernel.ZipCode {
	return s.destination
}

// EstimatedDelivery returns the promised delivery time.
func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

// SellerID returns the owning seller's identifier.
func (s *Shipment) SellerID() kernel.UUID {
	return s.sellerID
}

// PartnerID returns the assigned delivery partner's identifier.
// Returns nil if no partner has been assigned yet.
func (s *Shipment) PartnerID() *kernel.UUID {
	return s.partnerID
}

// ContactEmail returns the client's notification address.
func (s *Shipment) ContactEmail() string {
	return s.contactEmail
}

// ContactPhone returns the client's optional SMS number, nil when absent.
func (s *Shipment) ContactPhone() *string {
	return s.contactPhone
}

// Timeline returns the ordered, append-only event ledger.
func (s *Shipment) Timeline() []*Event {
	return s.timeline
}

// Tags returns the set of labels attached to the shipment.
func (s *Shipment) Tags() []Tag {
	return s.tags
}

// AssignPartner sets the delivery partner reference on the shipment.
// The partner ID must be a valid UUID.
func (s *Shipment) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	s.partnerID = &partnerID
	return nil
}

// IsAssignedTo reports whether the given partner is currently assigned to
// this shipment. Used for authorizing partner-initiated updates.
func (s *Shipment) IsAssignedTo(partnerID kernel.UUID) bool {
	return s.partnerID != nil && s.partnerID.IsEqual(partnerID)
}

// SetEstimatedDelivery applies a new promised delivery time directly to
// the shipment without generating a timeline event.
func (s *Shipment) SetEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return ErrEstimatedDeliveryIsRequired
	}
	s.estimatedDelivery = estimatedDelivery
	return nil
}

// LatestEvent returns the most recent event on the timeline: the one with
// the maximum creation timestamp, ties broken by insertion order.
// Returns nil for an empty timeline.
func (s *Shipment) LatestEvent() *Event {
	var latest *Event
	for _, event := range s.timeline {
		if latest == nil || !event.CreatedAt().Before(latest.CreatedAt()) {
			latest = event
		}
	}
	return latest
}

// CurrentStatus returns the status of the latest timeline event, which by
// definition is the shipment's current lifecycle state. Returns Unknown for
// an empty timeline (a shipment that has not yet recorded its Placed event).
func (s *Shipment) CurrentStatus() Status {
	latest := s.LatestEvent()
	if latest == nil {
		return Unknown
	}
	return latest.Status()
}

// RecordEvent appends a new event to the shipment's timeline.
//
// Either location or status (or both) may be nil, in which case the missing
// field is inherited from the latest event; if the timeline is empty and a
// field must be inherited, ErrNoPriorEvent is returned. An empty description
// is derived from the status (and location for intermediate scans) via
// Status.DefaultDescription.
//
// The transition from the current status to the event's status must be
// permitted by Status.CanProceedTo; in particular nothing follows Delivered,
// and Cancelled is rejected after Delivered. The event is appended at the
// tail, so ledger order reflects construction order.
func (s *Shipment) RecordEvent(
	eventID kernel.UUID,
	location *kernel.ZipCode,
	status *Status,
	description string,
	at time.Time,
) (*Event, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if location == nil || status == nil {
		latest := s.LatestEvent()
		if latest == nil {
			return nil, ErrNoPriorEvent
		}
		if location == nil {
			inherited := latest.Location()
			location = &inherited
		}
		if status == nil {
			inherited := latest.Status()
			status = &inherited
		}
	}

	if current := s.CurrentStatus(); current != Unknown {
		if err := current.CanProceedTo(*status); err != nil {
			return nil, fmt.Errorf("cannot record %s event: %w", status, err)
		}
	}

	if description == "" {
		description = status.DefaultDescription(*location)
	}

	event, err := NewEvent(eventID, *location, *status, description, at)
	if err != nil {
		return nil, err
	}

	s.timeline = append(s.timeline, event)
	return event, nil
}

// ApplyTag attaches a tag to the shipment's tag set.
// Attaching a tag that is already present is a no-op (set semantics).
func (s *Shipment) ApplyTag(tag Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	for _, existing := range s.tags {
		if existing == tag {
			return nil
		}
	}

	s.tags = append(s.tags, tag)
	return nil
}

// RemoveTag detaches a tag from the shipment's tag set.
// Returns an ObjectNotFoundError if the tag is not present.
func (s *Shipment) RemoveTag(tag Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	for i, existing := range s.tags {
		if existing == tag {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("tag", tag.String())
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setContent(content string) error {
	if content == "" {
		return ErrContentIsRequired
	}
	if len(content) > ContentMaxLength {
		return errs.NewValueIsOutOfRangeError("content length", len(content), 1, ContentMaxLength)
	}
	s.content = content
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 || weight > WeightMax {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, WeightMax)
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDestination(destination kernel.ZipCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	s.sellerID = sellerID
	return nil
}

func (s *Shipment) setContactEmail(contactEmail string) error {
	if contactEmail == "" {
		return ErrContactEmailIsRequired
	}
	s.contactEmail = contactEmail
	return nil
}
