package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetItemStockQueryHandler serves the stock position of one item.
type GetItemStockQueryHandler struct {
	db *gorm.DB
}

// NewGetItemStockQueryHandler creates a handler for the stock position query.
func NewGetItemStockQueryHandler(db *gorm.DB) GetItemStockQueryHandler {
	return GetItemStockQueryHandler{db: db}
}

// Handle returns on-hand, reserved and available quantity for one item.
// Returns ObjectNotFoundError when the item does not exist.
func (h GetItemStockQueryHandler) Handle(
	ctx context.Context,
	query GetItemStockQuery,
) (GetItemStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemStockQueryResponse{}, err
	}

	var stock GetItemStockQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.description,
			COALESCE(s.quantity_on_hand, 0),
			COALESCE((
				SELECT SUM(pl.quantity)
				FROM package_lines pl
				JOIN shipment_lines sl ON sl.package_no = pl.package_no
				JOIN shipment_heads sh ON sh.id = sl.shipment_no
				WHERE pl.item_no = i.id AND sh.status = 'open'
			), 0)
		FROM items i
		LEFT JOIN stocks s ON s.item_no = i.id
		WHERE i.id = ?
	`, query.ItemID()).Rows()
	if err != nil {
		return GetItemStockQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetItemStockQueryResponse{}, err
		}
		return GetItemStockQueryResponse{}, errs.NewObjectNotFoundError(
			"itemID", query.ItemID(),
		)
	}

	err = rows.Scan(
		&stock.ItemID,
		&stock.Description,
		&stock.QuantityOnHand,
		&stock.ReservedQuantity,
	)
	if err != nil {
		return GetItemStockQueryResponse{}, err
	}

	stock.Available = stock.QuantityOnHand - stock.ReservedQuantity

	return stock, nil
}
