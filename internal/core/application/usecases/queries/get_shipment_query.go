package queries

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery requests one shipment with its package lines.
type GetShipmentQuery struct {
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a single shipment.
func NewGetShipmentQuery(shipmentID uint64) (GetShipmentQuery, error) {
	if shipmentID == 0 {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("shipmentID")
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the requested shipment identifier.
func (q GetShipmentQuery) ShipmentID() uint64 {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// GetShipmentQueryResponse is one shipment head with its ordered lines.
type GetShipmentQueryResponse struct {
	ID        uint64
	Status    string
	Number    *string
	CreatedBy uint64
	CreatedAt time.Time
	Lines     []GetShipmentQueryLineResponse
}

// GetShipmentQueryLineResponse is one package line of a shipment.
type GetShipmentQueryLineResponse struct {
	LineNo        int
	PackageID     uint64
	PackageStatus string
}
