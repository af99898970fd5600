package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRemoveItemLineCommandIsNotConstructed = errors.New(
	"RemoveItemLineCommand must be created via NewRemoveItemLineCommand constructor",
)

// RemoveItemLineCommand represents a request to delete an item line from a
// package entirely. Partial-quantity removal is not supported.
type RemoveItemLineCommand struct { //nolint:recvcheck //using for validation
	packageID uint64
	itemID    uint64

	guard guard.ConstructorGuard
}

// NewRemoveItemLineCommand creates a command to remove an item line.
func NewRemoveItemLineCommand(packageID, itemID uint64) (RemoveItemLineCommand, error) {
	cmd := RemoveItemLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveItemLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemLineCommandIsNotConstructed)
}

// PackageID returns the target package's identifier.
func (c RemoveItemLineCommand) PackageID() uint64 {
	return c.packageID
}

// ItemID returns the identifier of the item whose line is removed.
func (c RemoveItemLineCommand) ItemID() uint64 {
	return c.itemID
}

func (c *RemoveItemLineCommand) setPackageID(packageID uint64) error {
	if packageID == 0 {
		return errs.NewValueIsRequiredError("packageID")
	}
	c.packageID = packageID
	return nil
}

func (c *RemoveItemLineCommand) setItemID(itemID uint64) error {
	if itemID == 0 {
		return errs.NewValueIsRequiredError("itemID")
	}
	c.itemID = itemID
	return nil
}
