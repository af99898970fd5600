package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackageQueryHandler serves a single package with its item lines and the
// linked shipment, when one exists.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for the single-package query.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle returns the package head, its parent shipment if linked, the edit
// lock flag, and the item lines ordered by line number.
// Returns ObjectNotFoundError when the package does not exist.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	var pkg GetPackageQueryResponse

	headRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.status,
			p.shipment_number,
			l.shipment_no,
			s.status
		FROM package_heads p
		LEFT JOIN shipment_lines l ON l.package_no = p.id
		LEFT JOIN shipment_heads s ON s.id = l.shipment_no
		WHERE p.id = ?
	`, query.PackageID()).Rows()
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	defer headRows.Close()

	if !headRows.Next() {
		if err = headRows.Err(); err != nil {
			return GetPackageQueryResponse{}, err
		}
		return GetPackageQueryResponse{}, errs.NewObjectNotFoundError(
			"packageID", query.PackageID(),
		)
	}

	err = headRows.Scan(
		&pkg.ID,
		&pkg.Status,
		&pkg.ShipmentNumber,
		&pkg.ShipmentID,
		&pkg.ShipmentStatus,
	)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	headRows.Close()

	pkg.Locked = pkg.Status != "open" ||
		(pkg.ShipmentStatus != nil && *pkg.ShipmentStatus != "open")

	pkg.Lines = make([]GetPackageQueryLineResponse, 0)

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.line_no,
			l.item_no,
			i.description,
			i.base_unit,
			l.quantity
		FROM package_lines l
		JOIN items i ON i.id = l.item_no
		WHERE l.package_no = ?
		ORDER BY l.line_no
	`, query.PackageID()).Rows()
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line GetPackageQueryLineResponse

		err = lineRows.Scan(
			&line.LineNo,
			&line.ItemID,
			&line.ItemDescription,
			&line.BaseUnit,
			&line.Quantity,
		)
		if err != nil {
			return GetPackageQueryResponse{}, err
		}

		pkg.Lines = append(pkg.Lines, line)
	}

	if err = lineRows.Err(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	return pkg, nil
}
