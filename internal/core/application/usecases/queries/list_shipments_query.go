// Package queries contains the read side of the CQRS split: read-only,
// side-effect-free views served with raw SQL against the database, bypassing
// the aggregates. Transport and serialization belong to the callers.
package queries

import (
	"errors"
	"time"

	"shipping/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery requests the shipment overview, newest first.
type ListShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates the shipment overview query.
func NewListShipmentsQuery() ListShipmentsQuery {
	return ListShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ListShipmentsQueryResponse is one row of the shipment overview.
type ListShipmentsQueryResponse struct {
	ID           uint64
	Status       string
	Number       *string
	CreatedBy    uint64
	CreatedAt    time.Time
	PackageCount int
}
