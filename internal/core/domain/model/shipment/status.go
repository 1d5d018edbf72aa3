package shipment

import (
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> InTransit ──> OutForDelivery ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// A status may repeat itself while non-terminal (a shipment in transit is
// scanned at several locations), and Cancelled is reachable from any
// non-terminal state. Delivered and Cancelled are terminal: no transition
// leads out of them, except that re-recording Cancelled on an already
// cancelled shipment is tolerated as a harmless duplicate.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set when a shipment is created and a
	// delivery partner has been assigned.
	Placed

	// InTransit indicates the shipment is moving through the carrier
	// network and is scanned at intermediate locations.
	InTransit

	// OutForDelivery indicates the shipment left the last hub and a
	// verification code has been issued for the physical handoff.
	OutForDelivery

	// Delivered indicates the shipment reached its destination and the
	// handoff was confirmed with the verification code. Terminal.
	Delivered

	// Cancelled indicates the seller cancelled the shipment. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "placed",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a Status from its persisted string representation.
// Returns an error for any string that is not one of the closed enumeration
// values "placed", "in_transit", "out_for_delivery", "delivered", "cancelled".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, InTransit, OutForDelivery, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "out_for_delivery".
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the shipment lifecycle.
// A shipment in a terminal status is immutable except for review attachment.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanProceedTo checks whether the timeline may move from this status to next.
//
// Rules:
//   - Lifecycle progress is monotonically non-decreasing:
//     Placed ≤ InTransit ≤ OutForDelivery ≤ Delivered. Repeating the current
//     status is allowed (e.g. successive InTransit scans).
//   - Cancelled is reachable from any non-terminal status, and from
//     Cancelled itself (duplicate cancel appends are tolerated).
//   - No transition leaves Delivered.
//
// Returns nil if the transition is allowed, or an error otherwise.
func (s Status) CanProceedTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next == Cancelled {
		if s == Delivered {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("cannot cancel a %s shipment", s))
		}
		return nil
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot proceed to %s", s, next))
	}

	if next < s {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move back from %s to %s", s, next))
	}

	return nil
}

// DefaultDescription derives the human-readable event description for a
// status when the caller supplies none.
//
// The mapping is total over the closed enumeration; the catch-all branch
// covers InTransit, whose description carries the scan location.
func (s Status) DefaultDescription(location kernel.ZipCode) string {
	switch s {
	case Placed:
		return "assigned delivery partner"
	case OutForDelivery:
		return "shipment out for delivery"
	case Delivered:
		return "successfully delivered"
	case Cancelled:
		return "cancelled by seller"
	default: // InTransit and any intermediate scan
		return fmt.Sprintf("scanned at %s", location)
	}
}
