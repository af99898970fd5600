package commands

import (
	"context"
	"time"
)

// ShipShipmentCommandHandler performs the atomic shipping fan-out:
//
//  1. verify the shipment is open,
//  2. derive the business number from the injected clock and shipment id,
//  3. mark the shipment shipped and store the number,
//  4. bulk-stamp every linked package with the number and shipped status,
//     regardless of prior package status,
//  5. commit everything as one unit.
//
// A business-number collision is rejected by the storage uniqueness
// constraint and rolls the whole operation back; the caller may retry with a
// fresh timestamp.
type ShipShipmentCommandHandler struct {
	uowFactory ShipmentPackageUoWFactory
	now        func() time.Time
}

// NewShipShipmentCommandHandler creates a handler for shipping shipments.
func NewShipShipmentCommandHandler(
	uowFactory ShipmentPackageUoWFactory,
	now func() time.Time,
) ShipShipmentCommandHandler {
	return ShipShipmentCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the ship command and returns the assigned business
// number. A second ship call on an already-shipped shipment always fails with
// an InvalidStateError and produces no mutation.
func (h *ShipShipmentCommandHandler) Handle(ctx context.Context, cmd ShipShipmentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sh, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return "", err
	}

	number, err := sh.Ship(h.now())
	if err != nil {
		return "", err
	}

	if err = uow.ShipmentRepository().Update(ctx, sh); err != nil {
		return "", err
	}

	if packageIDs := sh.PackageIDs(); len(packageIDs) > 0 {
		if err = uow.PackageRepository().MarkShipped(ctx, packageIDs, number); err != nil {
			return "", err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return number, nil
}
