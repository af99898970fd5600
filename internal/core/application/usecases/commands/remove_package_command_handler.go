package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// RemovePackageCommandHandler unlinks a package from an open shipment and
// deletes the package with its lines, all in one transaction.
type RemovePackageCommandHandler struct {
	uowFactory ShipmentPackageUoWFactory
}

// NewRemovePackageCommandHandler creates a handler for removing packages from shipments.
func NewRemovePackageCommandHandler(uowFactory ShipmentPackageUoWFactory) RemovePackageCommandHandler {
	return RemovePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Fails with an InvalidStateError when the
// shipment is not open and an ObjectNotFoundError when the shipment does not
// exist or the package is not linked to it.
func (h *RemovePackageCommandHandler) Handle(ctx context.Context, cmd RemovePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sh, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = sh.RemovePackage(cmd.PackageID()); err != nil {
		if errors.Is(err, shipment.ErrPackageNotLinked) {
			return errs.NewObjectNotFoundErrorWithCause("package", cmd.PackageID(), err)
		}
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, sh); err != nil {
		return err
	}

	if err = uow.PackageRepository().Delete(ctx, cmd.PackageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
