package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a new shipment in
// open status, stamped with the acting user's id.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	createdBy uint64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// The acting user id must be set; it is supplied by the authentication layer.
func NewCreateShipmentCommand(createdBy uint64) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCreatedBy(createdBy); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// CreatedBy returns the acting user id.
func (c CreateShipmentCommand) CreatedBy() uint64 {
	return c.createdBy
}

func (c *CreateShipmentCommand) setCreatedBy(createdBy uint64) error {
	if createdBy == 0 {
		return errs.NewValueIsRequiredError("createdBy")
	}
	c.createdBy = createdBy
	return nil
}
