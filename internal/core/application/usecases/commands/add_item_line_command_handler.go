package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/services"
)

// ErrReservationExceeded is returned when adding an item line would push the
// reserved total for that item beyond the on-hand stock. It is a typed
// outcome rather than a silent no-op so callers can distinguish "nothing
// happened because of stock" from other failures, without the error leaking
// the exact stock level.
var ErrReservationExceeded = errors.New("reservation exceeds on-hand stock")

// AddItemLineCommandHandler adds a quantity of an item to a package.
//
// The check-then-act sequence (read reserved total, then write the line) is
// the safety-critical part of the whole system: two concurrent additions for
// the same item must not both pass the check and jointly over-commit stock.
// The handler therefore locks the item's stock row for the duration of the
// transaction before computing the reserved total.
type AddItemLineCommandHandler struct {
	uowFactory  LineEditUoWFactory
	editLock    services.EditLock
	reservation services.ReservationPolicy
}

// NewAddItemLineCommandHandler creates a handler for adding item lines.
func NewAddItemLineCommandHandler(uowFactory LineEditUoWFactory) AddItemLineCommandHandler {
	return AddItemLineCommandHandler{
		uowFactory:  uowFactory,
		editLock:    services.NewEditLock(),
		reservation: services.NewReservationPolicy(),
	}
}

// Handle processes the command. Fails with ObjectNotFoundError when the
// package or item does not exist, InvalidStateError when the package is
// locked for edits, and ErrReservationExceeded when the quantity does not
// fit within on-hand stock. An existing line for the same item is
// incremented; otherwise a new line gets the next sequence number.
func (h *AddItemLineCommandHandler) Handle(ctx context.Context, cmd AddItemLineCommand) error {
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

	if _, err = uow.ItemRepository().Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	// Lock the stock row first so concurrent reservations for the same item
	// serialize on it; the reserved total read below stays stable until commit.
	onHand, err := uow.StockRepository().OnHandForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	reserved, err := uow.StockRepository().ReservedQuantity(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	fits, err := h.reservation.CanReserve(onHand, reserved, cmd.Quantity())
	if err != nil {
		return err
	}
	if !fits {
		return ErrReservationExceeded
	}

	if err = pkg.AddItem(cmd.ItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
