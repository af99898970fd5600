package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler serves a single shipment with its package lines.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for the single-shipment query.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns the shipment head and its lines ordered by line number.
// Returns ObjectNotFoundError when the shipment does not exist.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var shipment GetShipmentQueryResponse

	headRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			shipment_number,
			created_by,
			created_at
		FROM shipment_heads
		WHERE id = ?
	`, query.ShipmentID()).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer headRows.Close()

	if !headRows.Next() {
		if err = headRows.Err(); err != nil {
			return GetShipmentQueryResponse{}, err
		}
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError(
			"shipmentID", query.ShipmentID(),
		)
	}

	err = headRows.Scan(
		&shipment.ID,
		&shipment.Status,
		&shipment.Number,
		&shipment.CreatedBy,
		&shipment.CreatedAt,
	)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	headRows.Close()

	shipment.Lines = make([]GetShipmentQueryLineResponse, 0)

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.line_no,
			l.package_no,
			p.status
		FROM shipment_lines l
		JOIN package_heads p ON p.id = l.package_no
		WHERE l.shipment_no = ?
		ORDER BY l.line_no
	`, query.ShipmentID()).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line GetShipmentQueryLineResponse

		err = lineRows.Scan(&line.LineNo, &line.PackageID, &line.PackageStatus)
		if err != nil {
			return GetShipmentQueryResponse{}, err
		}

		shipment.Lines = append(shipment.Lines, line)
	}

	if err = lineRows.Err(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return shipment, nil
}
