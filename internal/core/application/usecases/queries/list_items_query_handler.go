package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListItemsQueryHandler serves the item catalog joined with stock levels.
type ListItemsQueryHandler struct {
	db *gorm.DB
}

// NewListItemsQueryHandler creates a handler for the item catalog query.
func NewListItemsQueryHandler(db *gorm.DB) ListItemsQueryHandler {
	return ListItemsQueryHandler{db: db}
}

// Handle returns every item with its on-hand quantity, ordered by id.
// Items without a stock row report zero on hand.
func (h ListItemsQueryHandler) Handle(
	ctx context.Context,
	query ListItemsQuery,
) ([]ListItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.description,
			i.base_unit,
			COALESCE(s.quantity_on_hand, 0)
		FROM items i
		LEFT JOIN stocks s ON s.item_no = i.id
		ORDER BY i.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListItemsQueryResponse

		err = rows.Scan(
			&item.ID,
			&item.Description,
			&item.BaseUnit,
			&item.QuantityOnHand,
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
