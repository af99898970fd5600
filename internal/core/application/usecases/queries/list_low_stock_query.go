package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListLowStockQueryIsNotConstructed = errors.New(
	"ListLowStockQuery must be created via NewListLowStockQuery constructor",
)

// ListLowStockQuery requests items whose available quantity, on hand minus
// reserved, has fallen to the threshold or below.
type ListLowStockQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewListLowStockQuery creates a low-stock query with the given threshold.
func NewListLowStockQuery(threshold int) (ListLowStockQuery, error) {
	if threshold < 0 {
		return ListLowStockQuery{}, errs.NewValueIsOutOfRangeError(
			"threshold", threshold, 0, nil,
		)
	}

	return ListLowStockQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Threshold returns the available-quantity cutoff.
func (q ListLowStockQuery) Threshold() int {
	return q.threshold
}

// Validate ensures the query was created through the constructor.
func (q ListLowStockQuery) Validate() error {
	return q.guard.Validate(ErrListLowStockQueryIsNotConstructed)
}

// ListLowStockQueryResponse is one item at or below the low-stock threshold.
type ListLowStockQueryResponse struct {
	ItemID           uint64
	Description      string
	QuantityOnHand   int
	ReservedQuantity int
	Available        int
}
