package commands

import (
	"context"
)

// PackPackageCommandHandler transitions a package from open to packed.
// Packing requires the current status to be exactly open; any other status
// is rejected with an InvalidStateError.
type PackPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewPackPackageCommandHandler creates a handler for packing packages.
func NewPackPackageCommandHandler(uowFactory PackageUoWFactory) PackPackageCommandHandler {
	return PackPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pack command.
func (h *PackPackageCommandHandler) Handle(ctx context.Context, cmd PackPackageCommand) error {
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

	if err = pkg.Pack(); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
