package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAddPackageCommandIsNotConstructed = errors.New(
	"AddPackageCommand must be created via NewAddPackageCommand constructor",
)

// AddPackageCommand represents a request to add a new, empty package to an
// open shipment. The package and its shipment line are created together.
type AddPackageCommand struct { //nolint:recvcheck //using for validation
	shipmentID uint64
	createdBy  uint64

	guard guard.ConstructorGuard
}

// NewAddPackageCommand creates a command to add a package to a shipment.
func NewAddPackageCommand(shipmentID, createdBy uint64) (AddPackageCommand, error) {
	cmd := AddPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return AddPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPackageCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageCommandIsNotConstructed)
}

// ShipmentID returns the target shipment's identifier.
func (c AddPackageCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// CreatedBy returns the acting user id.
func (c AddPackageCommand) CreatedBy() uint64 {
	return c.createdBy
}

func (c *AddPackageCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AddPackageCommand) setCreatedBy(createdBy uint64) error {
	if createdBy == 0 {
		return errs.NewValueIsRequiredError("createdBy")
	}
	c.createdBy = createdBy
	return nil
}
