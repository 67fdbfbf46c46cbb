// Package order provides domain entities and business logic for order
// management in the warehouse system. It implements the Order aggregate root
// with its owned line items and lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root owning lines and driving the lifecycle
//   - Item: A line capturing product, quantity, and the price at add time
//   - Status: A state machine enforcing Pending -> Fulfilled | Cancelled
//
// Key business rules:
//   - Lines can only change while the order is pending
//   - A product appears on at most one line; repeated adds merge quantities
//   - Fulfilled and Cancelled are terminal states with no edges out
//   - Cancelled orders keep their lines for audit
//   - Stock effects live on the Product aggregate; use cases pair every
//     line change with the matching reservation or return in one transaction
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
