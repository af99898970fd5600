// Package item contains the Item and Stock reference data. Items are
// immutable catalog entries; stock levels are maintained by external
// adjustment processes and only read by the reservation check.
package item

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem constructor")

	// ErrStockIsNotConstructed is returned when a Stock instance was not
	// created through RestoreStock.
	ErrStockIsNotConstructed = errors.New("Stock must be created via RestoreStock constructor")
)

// Item is an immutable catalog entry. Core operations only read items; they
// are seeded and maintained out of band.
type Item struct {
	id          uint64
	description string
	baseUnit    *string

	guard guard.ConstructorGuard
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id uint64, description string, baseUnit *string) (*Item, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	return &Item{
		id:          id,
		description: description,
		baseUnit:    baseUnit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item identifier.
func (i *Item) ID() uint64 {
	return i.id
}

// Description returns the human-readable item description.
func (i *Item) Description() string {
	return i.description
}

// BaseUnit returns the optional unit label ("pcs", "roll", ...).
func (i *Item) BaseUnit() *string {
	return i.baseUnit
}

// Stock is the on-hand count for one item, one-to-one with the item. It is
// updated only by external stock-adjustment processes; the reservation
// calculator treats a missing stock row as zero on hand.
type Stock struct {
	itemID         uint64
	quantityOnHand int

	guard guard.ConstructorGuard
}

// RestoreStock reconstructs a stock level from persistence.
// On-hand quantities are never negative.
func RestoreStock(itemID uint64, quantityOnHand int) (*Stock, error) {
	if itemID == 0 {
		return nil, errs.NewValueIsRequiredError("itemID")
	}
	if quantityOnHand < 0 {
		return nil, errs.NewValueIsInvalidError("quantityOnHand")
	}
	return &Stock{
		itemID:         itemID,
		quantityOnHand: quantityOnHand,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Stock instance was properly constructed.
func (s *Stock) Validate() error {
	if s == nil {
		return ErrStockIsNotConstructed
	}
	return s.guard.Validate(ErrStockIsNotConstructed)
}

// ItemID returns the identifier of the item this stock row belongs to.
func (s *Stock) ItemID() uint64 {
	return s.itemID
}

// QuantityOnHand returns the physical stock count.
func (s *Stock) QuantityOnHand() int {
	return s.quantityOnHand
}
