package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetItemStockQueryIsNotConstructed = errors.New(
	"GetItemStockQuery must be created via NewGetItemStockQuery constructor",
)

// GetItemStockQuery requests the stock position of one item.
type GetItemStockQuery struct {
	itemID uint64

	guard guard.ConstructorGuard
}

// NewGetItemStockQuery creates a stock position query for one item.
func NewGetItemStockQuery(itemID uint64) (GetItemStockQuery, error) {
	if itemID == 0 {
		return GetItemStockQuery{}, errs.NewValueIsRequiredError("itemID")
	}

	return GetItemStockQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the requested item identifier.
func (q GetItemStockQuery) ItemID() uint64 {
	return q.itemID
}

// Validate ensures the query was created through the constructor.
func (q GetItemStockQuery) Validate() error {
	return q.guard.Validate(ErrGetItemStockQueryIsNotConstructed)
}

// GetItemStockQueryResponse is the stock position of one item. Reserved counts
// quantities on lines of packages attached to open shipments; shipped stock has
// already left and no longer reserves anything.
type GetItemStockQueryResponse struct {
	ItemID           uint64
	Description      string
	QuantityOnHand   int
	ReservedQuantity int
	Available        int
}
