// Package shipment provides domain entities and business logic for shipment
// lifecycle management in the shipping system. It implements the Shipment
// aggregate root with its append-only event ledger, status state machine,
// tag set and review.
//
// The package includes:
//   - Shipment: The aggregate root owning the timeline of events and tags
//   - Event: An append-only ledger entry recording a status change at a location
//   - Status: A state machine over the closed shipment lifecycle enumeration
//   - Tag: A closed enumeration of handling labels with fixed instructions
//   - Review: The one-time rating attached after delivery
//
// Key business rules:
//   - The current status is the status of the most recent timeline event
//   - The timeline is monotonically non-decreasing in lifecycle progress;
//     Cancelled may follow any non-terminal status
//   - Delivered and Cancelled are terminal; a terminal shipment is immutable
//     except for review attachment
//   - Missing event fields are inherited from the latest event; an empty
//     timeline with fields to inherit fails with ErrNoPriorEvent
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
