package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListLowStockQueryHandler serves the low-stock report used by the periodic
// replenishment job.
type ListLowStockQueryHandler struct {
	db *gorm.DB
}

// NewListLowStockQueryHandler creates a handler for the low-stock query.
func NewListLowStockQueryHandler(db *gorm.DB) ListLowStockQueryHandler {
	return ListLowStockQueryHandler{db: db}
}

// Handle returns items whose available quantity is at or below the threshold,
// lowest availability first.
func (h ListLowStockQueryHandler) Handle(
	ctx context.Context,
	query ListLowStockQuery,
) ([]ListLowStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListLowStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			quantity_on_hand,
			reserved_quantity,
			quantity_on_hand - reserved_quantity AS available
		FROM (
			SELECT
				i.id,
				i.description,
				COALESCE(s.quantity_on_hand, 0) AS quantity_on_hand,
				COALESCE((
					SELECT SUM(pl.quantity)
					FROM package_lines pl
					JOIN shipment_lines sl ON sl.package_no = pl.package_no
					JOIN shipment_heads sh ON sh.id = sl.shipment_no
					WHERE pl.item_no = i.id AND sh.status = 'open'
				), 0) AS reserved_quantity
			FROM items i
			LEFT JOIN stocks s ON s.item_no = i.id
		) positions
		WHERE quantity_on_hand - reserved_quantity <= ?
		ORDER BY available, id
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListLowStockQueryResponse

		err = rows.Scan(
			&item.ItemID,
			&item.Description,
			&item.QuantityOnHand,
			&item.ReservedQuantity,
			&item.Available,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
