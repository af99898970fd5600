package postgres

import (
	"shipping/internal/adapters/out/postgres/itemrepo"
	"shipping/internal/adapters/out/postgres/packrepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persistence DTOs.
// Head tables go first so the line tables can reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&itemrepo.ItemDTO{},
		&itemrepo.StockDTO{},
		&shipmentrepo.ShipmentDTO{},
		&packrepo.PackageDTO{},
		&shipmentrepo.LineDTO{},
		&packrepo.LineDTO{},
	)
}
