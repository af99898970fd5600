package commands_test

import (
	"context"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/item"
	"shipping/internal/core/domain/model/pack"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork satisfies every command-side unit of work interface, so a
// single mock type serves all handler tests.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUnitOfWork) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUnitOfWork) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUnitOfWork) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockShipmentUoWFactory struct {
	mock.Mock
}

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockPackageUoWFactory struct {
	mock.Mock
}

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockShipmentPackageUoWFactory struct {
	mock.Mock
}

func (m *MockShipmentPackageUoWFactory) Create() commands.ShipmentPackageUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentPackageUoW)
}

type MockLineEditUoWFactory struct {
	mock.Mock
}

func (m *MockLineEditUoWFactory) Create() commands.LineEditUoW {
	args := m.Called()
	return args.Get(0).(commands.LineEditUoW)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id uint64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByPackageID(ctx context.Context, packageID uint64) (*shipment.Shipment, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Add(ctx context.Context, aggregate *pack.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, aggregate *pack.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id uint64) (*pack.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pack.Package), args.Error(1)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) MarkShipped(ctx context.Context, packageIDs []uint64, number string) error {
	args := m.Called(ctx, packageIDs, number)
	return args.Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Get(ctx context.Context, id uint64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) OnHandForUpdate(ctx context.Context, itemID uint64) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockStockRepository) ReservedQuantity(ctx context.Context, itemID uint64) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}
