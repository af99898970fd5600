package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrListItemsQueryIsNotConstructed = errors.New(
	"ListItemsQuery must be created via NewListItemsQuery constructor",
)

// ListItemsQuery requests the item catalog with stock levels.
type ListItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListItemsQuery creates the item catalog query.
func NewListItemsQuery() ListItemsQuery {
	return ListItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

// ListItemsQueryResponse is one catalog row with its on-hand quantity.
type ListItemsQueryResponse struct {
	ID             uint64
	Description    string
	BaseUnit       *string
	QuantityOnHand int
}
