package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler serves the shipment overview.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListShipmentsQueryHandler(db)
//	query := NewListShipmentsQuery()
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list shipments: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d shipments\n", len(shipments))
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for the shipment overview query.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle returns every shipment with its package count, newest first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ListShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.status,
			s.shipment_number,
			s.created_by,
			s.created_at,
			COUNT(l.line_no) AS package_count
		FROM shipment_heads s
		LEFT JOIN shipment_lines l ON l.shipment_no = s.id
		GROUP BY s.id, s.status, s.shipment_number, s.created_by, s.created_at
		ORDER BY s.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipment ListShipmentsQueryResponse

		err = rows.Scan(
			&shipment.ID,
			&shipment.Status,
			&shipment.Number,
			&shipment.CreatedBy,
			&shipment.CreatedAt,
			&shipment.PackageCount,
		)
		if err != nil {
			return nil, err
		}

		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
