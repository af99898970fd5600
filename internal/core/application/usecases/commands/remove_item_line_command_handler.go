package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/pack"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

// RemoveItemLineCommandHandler deletes an item line from a package. The
// package must not be locked for edits, and the line must exist. Remaining
// line numbers are left untouched.
type RemoveItemLineCommandHandler struct {
	uowFactory LineEditUoWFactory
	editLock   services.EditLock
}

// NewRemoveItemLineCommandHandler creates a handler for removing item lines.
func NewRemoveItemLineCommandHandler(uowFactory LineEditUoWFactory) RemoveItemLineCommandHandler {
	return RemoveItemLineCommandHandler{
		uowFactory: uowFactory,
		editLock:   services.NewEditLock(),
	}
}

// Handle processes the command. Fails with ObjectNotFoundError when the
// package or line does not exist and InvalidStateError when the package is
// locked for edits.
func (h *RemoveItemLineCommandHandler) Handle(ctx context.Context, cmd RemoveItemLineCommand) error {
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

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	parent, err := uow.ShipmentRepository().GetByPackageID(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = h.editLock.ValidateEditable(pkg, parent); err != nil {
		return err
	}

	if err = pkg.RemoveItem(cmd.ItemID()); err != nil {
		if errors.Is(err, pack.ErrLineNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("line", cmd.ItemID(), err)
		}
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
