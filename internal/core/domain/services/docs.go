// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ShipmentAllocator: A domain service for assigning new shipments to
//     delivery partners using a first-fit capacity rule
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
