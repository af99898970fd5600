// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, handling the conversion between domain entities and
// database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The identifier is database-assigned; the business number is
// set once when the shipment ships and is unique across all shipments.
type ShipmentDTO struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Status         string    `gorm:"type:varchar(16);not null"`
	ShipmentNumber *string   `gorm:"type:varchar(64);uniqueIndex"`
	CreatedBy      uint64    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	Lines          []LineDTO `gorm:"foreignKey:ShipmentNo;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment heads.
func (ShipmentDTO) TableName() string {
	return "shipment_heads"
}

// LineDTO represents one package association of a shipment. The composite
// primary key preserves per-shipment line numbering; the unique index on
// PackageNo keeps every package in at most one shipment.
type LineDTO struct {
	ShipmentNo uint64 `gorm:"primaryKey;autoIncrement:false"`
	LineNo     int    `gorm:"primaryKey;autoIncrement:false"`
	PackageNo  uint64 `gorm:"not null;uniqueIndex"`
}

// TableName specifies the database table name for shipment lines.
func (LineDTO) TableName() string {
	return "shipment_lines"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ShipmentNo: aggregate.ID(),
			LineNo:     line.LineNo(),
			PackageNo:  line.PackageID(),
		})
	}

	return ShipmentDTO{
		ID:             aggregate.ID(),
		Status:         aggregate.Status().String(),
		ShipmentNumber: aggregate.Number(),
		CreatedBy:      aggregate.CreatedBy(),
		CreatedAt:      aggregate.CreatedAt(),
		Lines:          lines,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]shipment.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := shipment.NewLine(lineDto.LineNo, lineDto.PackageNo)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return shipment.RestoreShipment(
		dto.ID,
		status,
		dto.ShipmentNumber,
		dto.CreatedBy,
		dto.CreatedAt,
		lines,
	)
}
