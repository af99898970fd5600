// Package services provides domain services that implement business rules
// spanning more than one aggregate in the shipping system.
//
// The package includes:
//   - ReservationPolicy: decides whether an additional quantity fits within
//     on-hand stock given the total reserved across open shipments
//   - EditLock: the derived condition deciding whether a package accepts
//     content edits, based on its own status and its parent shipment's status
package services
