package itemrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/item"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository and StockRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id uint64) (*item.Item, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// OnHandForUpdate returns the on-hand quantity for an item, locking the stock
// row with SELECT FOR UPDATE inside the current transaction so concurrent
// reservation checks for the same item serialize. A missing stock row yields
// 0 without a lock anchor; reservations against zero stock always fail, so
// no race window opens there.
func (r *GormItemRepository) OnHandForUpdate(ctx context.Context, itemID uint64) (int, error) {
	if itemID == 0 {
		return 0, errs.NewValueIsRequiredError("itemID")
	}

	var dto StockDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "item_no = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return dto.QuantityOnHand, nil
}

// ReservedQuantity computes the total quantity of an item committed across
// all open shipments: package lines whose package is linked, through a
// shipment line, to a shipment in open status. Lines in unlinked packages
// do not reserve anything.
func (r *GormItemRepository) ReservedQuantity(ctx context.Context, itemID uint64) (int, error) {
	if itemID == 0 {
		return 0, errs.NewValueIsRequiredError("itemID")
	}

	var reserved int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(pl.quantity), 0)
		FROM package_lines pl
		JOIN shipment_lines sl ON sl.package_no = pl.package_no
		JOIN shipment_heads sh ON sh.id = sl.shipment_no
		WHERE pl.item_no = ? AND sh.status = ?
	`, itemID, "open").Scan(&reserved).Error
	if err != nil {
		return 0, err
	}

	return reserved, nil
}
