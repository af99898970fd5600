package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrShipShipmentCommandIsNotConstructed = errors.New(
	"ShipShipmentCommand must be created via NewShipShipmentCommand constructor",
)

// ShipShipmentCommand represents a request to dispatch an open shipment:
// assign its business number, mark it shipped, and stamp the number and
// status onto every member package.
type ShipShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewShipShipmentCommand creates a command to ship a shipment.
func NewShipShipmentCommand(shipmentID uint64) (ShipShipmentCommand, error) {
	cmd := ShipShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ShipShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipShipmentCommand) Validate() error {
	return c.guard.Validate(ErrShipShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to dispatch.
func (c ShipShipmentCommand) ShipmentID() uint64 {
	return c.shipmentID
}

func (c *ShipShipmentCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}
