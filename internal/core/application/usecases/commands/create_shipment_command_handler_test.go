package commands_test

import (
	"errors"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func TestNewCreateShipmentCommandHandler(t *testing.T) {
	handler := commands.NewCreateShipmentCommandHandler(new(MockShipmentUoWFactory), fixedClock)

	assert.NotNil(t, handler)
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(7)
	require.NoError(t, err)

	mockRepo := new(MockShipmentRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				sh := args.Get(1).(*shipment.Shipment)
				require.NoError(t, sh.AssignID(42))
			}).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, fixedClock)

	// Act
	sh, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, sh)
	assert.Equal(t, uint64(42), sh.ID())
	assert.Equal(t, shipment.Open, sh.Status())
	assert.Nil(t, sh.Number())
	assert.Equal(t, uint64(7), sh.CreatedBy())
	assert.Equal(t, fixedClock(), sh.CreatedAt())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var invalidCmd commands.CreateShipmentCommand

	mockFactory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(mockFactory, fixedClock)

	sh, err := handler.Handle(ctx, invalidCmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	assert.Nil(t, sh)
	mockFactory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(7)
	require.NoError(t, err)

	expectedErr := errors.New("insert failed")
	mockRepo := new(MockShipmentRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(expectedErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, fixedClock)

	sh, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, sh)
	mockUoW.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(7)
	require.NoError(t, err)

	expectedErr := errors.New("begin transaction failed")
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedErr).Once(),
	)

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, fixedClock)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, expectedErr)
	mockUoW.AssertExpectations(t)
}
