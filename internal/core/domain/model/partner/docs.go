// Package partner provides the DeliveryPartner aggregate for the shipping
// system. A partner services a set of zip codes and carries shipments up to
// a maximum handling capacity.
//
// Key business rules:
//   - Current handling capacity is derived: max capacity minus currently
//     assigned non-terminal shipments, and never goes below zero
//   - Capacity is consumed when a shipment is assigned and released when
//     the shipment reaches a terminal status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package partner
