package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveItemLineCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRemoveItemLineCommand(101, 11)
	require.NoError(t, err)

	pkg := openPackage(t, 101)
	require.NoError(t, pkg.AddItem(11, 5))
	require.NoError(t, pkg.AddItem(12, 2))
	m := newLineEditMocks()

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("PackageRepository").Return(m.packageRepo).Once(),
		m.packageRepo.On("Get", ctx, uint64(101)).Return(pkg, nil).Once(),
		m.uow.On("ShipmentRepository").Return(m.shipmentRepo).Once(),
		m.shipmentRepo.On("GetByPackageID", ctx, uint64(101)).Return(openShipment(t, 42), nil).Once(),
		m.uow.On("PackageRepository").Return(m.packageRepo).Once(),
		m.packageRepo.On("Update", ctx, pkg).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRemoveItemLineCommandHandler(m.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: remaining line keeps its original number.
	require.NoError(t, err)
	_, ok := pkg.LineFor(11)
	assert.False(t, ok)
	remaining, ok := pkg.LineFor(12)
	require.True(t, ok)
	assert.Equal(t, 2, remaining.LineNo())
	m.assertExpectations(t)
}

func TestRemoveItemLineCommandHandler_Handle_LineNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRemoveItemLineCommand(101, 99)
	require.NoError(t, err)

	pkg := openPackage(t, 101)
	require.NoError(t, pkg.AddItem(11, 5))
	m := newLineEditMocks()

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("PackageRepository").Return(m.packageRepo).Once(),
		m.packageRepo.On("Get", ctx, uint64(101)).Return(pkg, nil).Once(),
		m.uow.On("ShipmentRepository").Return(m.shipmentRepo).Once(),
		m.shipmentRepo.On("GetByPackageID", ctx, uint64(101)).Return(nil, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRemoveItemLineCommandHandler(m.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: a missing line reads as not found, existing lines untouched.
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Len(t, pkg.Lines(), 1)
	m.packageRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assertExpectations(t)
}

func TestRemoveItemLineCommandHandler_Handle_PackageLocked(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRemoveItemLineCommand(101, 11)
	require.NoError(t, err)

	pkg := openPackage(t, 101)
	require.NoError(t, pkg.AddItem(11, 5))
	m := newLineEditMocks()

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("PackageRepository").Return(m.packageRepo).Once(),
		m.packageRepo.On("Get", ctx, uint64(101)).Return(pkg, nil).Once(),
		m.uow.On("ShipmentRepository").Return(m.shipmentRepo).Once(),
		m.shipmentRepo.On("GetByPackageID", ctx, uint64(101)).Return(shippedShipment(t, 42), nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRemoveItemLineCommandHandler(m.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Len(t, pkg.Lines(), 1)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assertExpectations(t)
}

func TestRemoveItemLineCommandHandler_Handle_PackageNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRemoveItemLineCommand(101, 11)
	require.NoError(t, err)

	m := newLineEditMocks()

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("PackageRepository").Return(m.packageRepo).Once(),
		m.packageRepo.On("Get", ctx, uint64(101)).
			Return(nil, errs.NewObjectNotFoundError("package", uint64(101))).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRemoveItemLineCommandHandler(m.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.uow.AssertNotCalled(t, "ShipmentRepository")
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assertExpectations(t)
}

func TestRemoveItemLineCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var invalidCmd commands.RemoveItemLineCommand

	mockFactory := new(MockLineEditUoWFactory)
	handler := commands.NewRemoveItemLineCommandHandler(mockFactory)

	err := handler.Handle(ctx, invalidCmd)

	require.ErrorIs(t, err, commands.ErrRemoveItemLineCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
