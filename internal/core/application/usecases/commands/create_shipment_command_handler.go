package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// creation. New shipments start in open status with no packages and no
// business number.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// The clock is injected so creation timestamps stay deterministic in tests.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, now func() time.Time) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the shipment creation command and returns the persisted
// shipment with its storage-assigned identifier.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(cmd.CreatedBy(), h.now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShipment, nil
}
