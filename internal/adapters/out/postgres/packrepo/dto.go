// Package packrepo provides data transfer objects and mapping functions for
// package persistence. It implements the repository pattern for the package
// aggregate, handling the conversion between domain entities and database
// representations.
package packrepo

import (
	"time"

	"shipping/internal/core/domain/model/pack"
)

// PackageDTO represents the database structure for persisting package
// aggregates. The shipment number column is stamped in bulk when the parent
// shipment ships; it denormalizes the business number onto the package row.
type PackageDTO struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Status         string    `gorm:"type:varchar(16);not null"`
	ShipmentNumber *string   `gorm:"type:varchar(64)"`
	CreatedBy      uint64    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	Lines          []LineDTO `gorm:"foreignKey:PackageNo;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for package heads.
func (PackageDTO) TableName() string {
	return "package_heads"
}

// LineDTO represents one item position of a package. The composite primary
// key preserves per-package line numbering; the unique index on the item
// keeps one line per item, and the check keeps quantities positive.
type LineDTO struct {
	PackageNo uint64 `gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_package_lines_item"`
	LineNo    int    `gorm:"primaryKey;autoIncrement:false"`
	ItemNo    uint64 `gorm:"not null;uniqueIndex:idx_package_lines_item"`
	Quantity  int    `gorm:"not null;check:quantity > 0"`
}

// TableName specifies the database table name for package lines.
func (LineDTO) TableName() string {
	return "package_lines"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(aggregate *pack.Package) PackageDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			PackageNo: aggregate.ID(),
			LineNo:    line.LineNo(),
			ItemNo:    line.ItemID(),
			Quantity:  line.Quantity(),
		})
	}

	return PackageDTO{
		ID:             aggregate.ID(),
		Status:         aggregate.Status().String(),
		ShipmentNumber: aggregate.ShipmentNumber(),
		CreatedBy:      aggregate.CreatedBy(),
		CreatedAt:      aggregate.CreatedAt(),
		Lines:          lines,
	}
}

// toDomain converts a database DTO to a package domain aggregate.
func toDomain(dto PackageDTO) (*pack.Package, error) {
	status, err := pack.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]pack.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := pack.NewLine(lineDto.LineNo, lineDto.ItemNo, lineDto.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return pack.RestorePackage(
		dto.ID,
		status,
		dto.ShipmentNumber,
		dto.CreatedBy,
		dto.CreatedAt,
		lines,
	)
}
