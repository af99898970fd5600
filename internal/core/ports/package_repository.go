package ports

import (
	"context"

	"shipping/internal/core/domain/model/pack"
)

// PackageRepository defines the persistence contract for package aggregates,
// including their item lines.
type PackageRepository interface {
	// Add persists a new package aggregate and assigns its storage
	// identifier back onto the aggregate.
	Add(ctx context.Context, aggregate *pack.Package) error

	// Update persists changes to an existing package aggregate, including
	// added, incremented, and removed lines.
	Update(ctx context.Context, aggregate *pack.Package) error

	// Get retrieves a package aggregate with all its lines.
	Get(ctx context.Context, id uint64) (*pack.Package, error)

	// Delete removes a package and its lines entirely. Packages have no
	// independent existence once unlinked from their shipment.
	Delete(ctx context.Context, id uint64) error

	// MarkShipped bulk-stamps the given packages with the shipment's
	// business number and the shipped status, regardless of their prior
	// status. This is the unconditional fan-out of the ship operation, not a
	// validated per-package transition.
	MarkShipped(ctx context.Context, packageIDs []uint64, number string) error
}
