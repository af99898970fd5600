// Package itemrepo provides read-side persistence for the item catalog and
// stock levels. Items and stocks are reference data maintained out of band;
// the repository only reads them.
package itemrepo

import (
	"shipping/internal/core/domain/model/item"
)

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	Description string  `gorm:"type:varchar(255);not null"`
	BaseUnit    *string `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for items.
func (ItemDTO) TableName() string {
	return "items"
}

// StockDTO represents the on-hand stock row, one per item.
type StockDTO struct {
	ItemNo         uint64 `gorm:"primaryKey;autoIncrement:false"`
	QuantityOnHand int    `gorm:"not null;check:quantity_on_hand >= 0"`
}

// TableName specifies the database table name for stock rows.
func (StockDTO) TableName() string {
	return "stocks"
}

// toDomain converts an item DTO to its domain representation.
func toDomain(dto ItemDTO) (*item.Item, error) {
	return item.RestoreItem(dto.ID, dto.Description, dto.BaseUnit)
}
