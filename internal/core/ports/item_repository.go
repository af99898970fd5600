package ports

import (
	"context"

	"shipping/internal/core/domain/model/item"
)

// ItemRepository defines read access to the item catalog. Items are
// reference data; core operations never create or modify them.
type ItemRepository interface {
	// Get retrieves an item by its identifier.
	Get(ctx context.Context, id uint64) (*item.Item, error)
}

// StockRepository defines read access to stock levels and the reservation
// figures derived from them.
type StockRepository interface {
	// OnHandForUpdate returns the on-hand quantity for an item and, when a
	// stock row exists, locks it for the remainder of the transaction so
	// concurrent reservation checks for the same item serialize. Items
	// without a stock row yield 0 with no lock anchor, which is safe because
	// reservations against zero stock always fail.
	OnHandForUpdate(ctx context.Context, itemID uint64) (int, error)

	// ReservedQuantity computes the total quantity of an item committed
	// across all open shipments: the sum over package lines whose package is
	// linked, via a shipment line, to a shipment in open status. Lines in
	// unlinked packages are excluded.
	ReservedQuantity(ctx context.Context, itemID uint64) (int, error)
}
