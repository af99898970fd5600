package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/pack"
)

// AddPackageCommandHandler adds a new, empty package to an open shipment.
// Package creation and the shipment line are a single transaction: if the
// link cannot be written, the package creation rolls back with it, so a
// package never exists linked to nothing.
type AddPackageCommandHandler struct {
	uowFactory ShipmentPackageUoWFactory
	now        func() time.Time
}

// NewAddPackageCommandHandler creates a handler for adding packages to shipments.
func NewAddPackageCommandHandler(
	uowFactory ShipmentPackageUoWFactory,
	now func() time.Time,
) AddPackageCommandHandler {
	return AddPackageCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the command and returns the persisted package. Fails with
// an InvalidStateError when the shipment is not open and an
// ObjectNotFoundError when it does not exist.
func (h *AddPackageCommandHandler) Handle(ctx context.Context, cmd AddPackageCommand) (*pack.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sh, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	// Reject a non-open shipment before creating anything.
	if err = sh.Status().ValidateOpen(); err != nil {
		return nil, err
	}

	newPackage, err := pack.NewPackage(cmd.CreatedBy(), h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.PackageRepository().Add(ctx, newPackage); err != nil {
		return nil, err
	}

	if _, err = sh.AddPackage(newPackage.ID()); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, sh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newPackage, nil
}
