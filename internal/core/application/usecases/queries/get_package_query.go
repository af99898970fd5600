package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery requests one package with its item lines.
type GetPackageQuery struct {
	packageID uint64

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for a single package.
func NewGetPackageQuery(packageID uint64) (GetPackageQuery, error) {
	if packageID == 0 {
		return GetPackageQuery{}, errs.NewValueIsRequiredError("packageID")
	}

	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PackageID returns the requested package identifier.
func (q GetPackageQuery) PackageID() uint64 {
	return q.packageID
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// GetPackageQueryResponse is one package head with its ordered item lines.
// Locked reports whether line editing is blocked, either because the package
// left the open state or because its parent shipment did.
type GetPackageQueryResponse struct {
	ID             uint64
	Status         string
	ShipmentNumber *string
	ShipmentID     *uint64
	ShipmentStatus *string
	Locked         bool
	Lines          []GetPackageQueryLineResponse
}

// GetPackageQueryLineResponse is one item line of a package.
type GetPackageQueryLineResponse struct {
	LineNo          int
	ItemID          uint64
	ItemDescription string
	BaseUnit        *string
	Quantity        int
}
