package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")
	// ErrDescriptionIsRequired is returned when attempting to create an event without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrCreatedAtIsRequired is returned when attempting to create an event without a creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("created at")
)

// Event is a single entry in a shipment's timeline. It records a status
// change (or scan) at a location with a human-readable description and a
// creation timestamp.
//
// Events are owned by exactly one shipment and are append-only: once
// recorded they are never mutated or deleted. The shipment's current status
// is defined as the status of its most recent event.
type Event struct {
	// id uniquely identifies the event
	id kernel.UUID
	// location is the zip code where the event was recorded
	location kernel.ZipCode
	// status is the lifecycle state recorded by this event
	status Status
	// description is the human-readable explanation of the event
	description string
	// createdAt orders the event within the shipment timeline
	createdAt time.Time
	// guard ensures the event was properly constructed
	guard guard.ConstructorGuard
}

// NewEvent creates a new timeline Event with validation.
//
// All parameters must be valid: the id a constructed UUID, the location a
// constructed ZipCode, the status one of the closed enumeration values,
// the description non-empty and createdAt non-zero.
func NewEvent(
	id kernel.UUID,
	location kernel.ZipCode,
	status Status,
	description string,
	createdAt time.Time,
) (*Event, error) {
	event := &Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setID(id),
		event.setLocation(location),
		event.setStatus(status),
		event.setDescription(description),
		event.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return event, nil
}

// RestoreEvent reconstructs an Event from persistent storage.
// The restored event behaves identically to one created through NewEvent.
func RestoreEvent(
	id kernel.UUID,
	location kernel.ZipCode,
	status Status,
	description string,
	createdAt time.Time,
) (*Event, error) {
	return NewEvent(id, location, status, description, createdAt)
}

// Validate checks if the Event was properly constructed via its constructor.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// IsEqual compares two events by their unique identifiers.
func (e *Event) IsEqual(other *Event) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// Location returns the zip code where the event was recorded.
func (e *Event) Location() kernel.ZipCode {
	return e.location
}

// Status returns the lifecycle state recorded by this event.
func (e *Event) Status() Status {
	return e.status
}

// Description returns the human-readable explanation of the event.
func (e *Event) Description() string {
	return e.description
}

// CreatedAt returns the event's creation timestamp.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setLocation(location kernel.ZipCode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *Event) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Event) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	e.description = description
	return nil
}

func (e *Event) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	e.createdAt = createdAt
	return nil
}
