package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRemovePackageCommandIsNotConstructed = errors.New(
	"RemovePackageCommand must be created via NewRemovePackageCommand constructor",
)

// RemovePackageCommand represents a request to unlink a package from an open
// shipment and delete it. Packages have no independent existence once
// unlinked; there is no detach-and-keep operation.
type RemovePackageCommand struct { //nolint:recvcheck //using for validation
	shipmentID uint64
	packageID  uint64

	guard guard.ConstructorGuard
}

// NewRemovePackageCommand creates a command to remove a package from a shipment.
func NewRemovePackageCommand(shipmentID, packageID uint64) (RemovePackageCommand, error) {
	cmd := RemovePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setPackageID(packageID),
	); err != nil {
		return RemovePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePackageCommand) Validate() error {
	return c.guard.Validate(ErrRemovePackageCommandIsNotConstructed)
}

// ShipmentID returns the target shipment's identifier.
func (c RemovePackageCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// PackageID returns the identifier of the package to remove.
func (c RemovePackageCommand) PackageID() uint64 {
	return c.packageID
}

func (c *RemovePackageCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *RemovePackageCommand) setPackageID(packageID uint64) error {
	if packageID == 0 {
		return errs.NewValueIsRequiredError("packageID")
	}
	c.packageID = packageID
	return nil
}
