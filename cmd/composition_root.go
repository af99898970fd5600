package cmd

import (
	"time"

	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	now        func() time.Time
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateAddPackageCommandHandler() commands.AddPackageCommandHandler {
	var f commands.ShipmentPackageUoWFactory = FuncShipmentPackageUoWFactory(func() commands.ShipmentPackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPackageCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateRemovePackageCommandHandler() commands.RemovePackageCommandHandler {
	var f commands.ShipmentPackageUoWFactory = FuncShipmentPackageUoWFactory(func() commands.ShipmentPackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemovePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateShipShipmentCommandHandler() commands.ShipShipmentCommandHandler {
	var f commands.ShipmentPackageUoWFactory = FuncShipmentPackageUoWFactory(func() commands.ShipmentPackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipShipmentCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreatePackPackageCommandHandler() commands.PackPackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPackPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemLineCommandHandler() commands.AddItemLineCommandHandler {
	var f commands.LineEditUoWFactory = FuncLineEditUoWFactory(func() commands.LineEditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemLineCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveItemLineCommandHandler() commands.RemoveItemLineCommandHandler {
	var f commands.LineEditUoWFactory = FuncLineEditUoWFactory(func() commands.LineEditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemLineCommandHandler(f)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListItemsQueryHandler() queries.ListItemsQueryHandler {
	return queries.NewListItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemStockQueryHandler() queries.GetItemStockQueryHandler {
	return queries.NewGetItemStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLowStockQueryHandler() queries.ListLowStockQueryHandler {
	return queries.NewListLowStockQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncShipmentPackageUoWFactory func() commands.ShipmentPackageUoW

func (f FuncShipmentPackageUoWFactory) Create() commands.ShipmentPackageUoW {
	return f()
}

type FuncLineEditUoWFactory func() commands.LineEditUoW

func (f FuncLineEditUoWFactory) Create() commands.LineEditUoW {
	return f()
}
