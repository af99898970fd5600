// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates, including their package-association lines.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate and assigns its storage
	// identifier back onto the aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, including
	// added and removed lines. Uniqueness of the business number and of each
	// package link is enforced at the storage boundary.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate with all its lines.
	Get(ctx context.Context, id uint64) (*shipment.Shipment, error)

	// GetByPackageID retrieves the shipment a package is linked to, with all
	// its lines. Returns (nil, nil) when the package is not linked to any
	// shipment. Ownership is unidirectional, so this is an explicit index
	// lookup rather than pointer traversal from the package side.
	GetByPackageID(ctx context.Context, packageID uint64) (*shipment.Shipment, error)
}
