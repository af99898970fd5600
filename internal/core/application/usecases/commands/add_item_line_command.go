package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAddItemLineCommandIsNotConstructed = errors.New(
	"AddItemLineCommand must be created via NewAddItemLineCommand constructor",
)

// AddItemLineCommand represents a request to add a quantity of an item to a
// package. Malformed input (zero ids, non-positive quantity) is rejected
// here, before any store access.
type AddItemLineCommand struct { //nolint:recvcheck //using for validation
	packageID uint64
	itemID    uint64
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddItemLineCommand creates a command to add an item line to a package.
func NewAddItemLineCommand(packageID, itemID uint64, quantity int) (AddItemLineCommand, error) {
	cmd := AddItemLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemLineCommand) Validate() error {
	return c.guard.Validate(ErrAddItemLineCommandIsNotConstructed)
}

// PackageID returns the target package's identifier.
func (c AddItemLineCommand) PackageID() uint64 {
	return c.packageID
}

// ItemID returns the identifier of the item to add.
func (c AddItemLineCommand) ItemID() uint64 {
	return c.itemID
}

// Quantity returns the quantity to add.
func (c AddItemLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemLineCommand) setPackageID(packageID uint64) error {
	if packageID == 0 {
		return errs.NewValueIsRequiredError("packageID")
	}
	c.packageID = packageID
	return nil
}

func (c *AddItemLineCommand) setItemID(itemID uint64) error {
	if itemID == 0 {
		return errs.NewValueIsRequiredError("itemID")
	}
	c.itemID = itemID
	return nil
}

func (c *AddItemLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}
